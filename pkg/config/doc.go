// Package config loads migration settings and steps for colshift.
//
//	            +-------------+
//	            |   Config    |
//	            | (Settings)  |
//	            +------+------+
//	                   |
//	   +---------+-----+-----+---------+
//	   |         |           |         |
//	+--+---+  +--+--+    +---+--+  +---+--+
//	| YAML |  | HCL |    | JSON |  | TOML |
//	+------+  +-----+    +------+  +------+
//
// 🎯 Purpose:
// - Pick a parser by file extension and decode the file strictly (unknown keys are errors)
// - Resolve the table directory relative to the config file
// - Validate steps and turn them into operation.Operation values
//
// 🔍 Example (YAML):
//
//	path: ./data
//	extension: csv
//	exclude: ["**/archive/**"]
//	backup: true
//	steps:
//	  - kind: insert
//	    column: created_at
//	    default_value: "1970-01-01"
//	    order: 2
//	  - kind: reorder
//	    column: id
//	    order: 1
//
// The same steps in HCL:
//
//	path = "./data"
//
//	step "insert" {
//	  column        = "created_at"
//	  default_value = "1970-01-01"
//	  order         = 2
//	}
package config
