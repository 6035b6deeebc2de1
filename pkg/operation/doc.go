/*
Package operation implements the column layout migrations applied to table files.

	+-------------+
	|   locate    |
	| (file set)  |
	+------+------+
	       |
	+------+------+
	|   Runner    |
	| (one file   |
	|  at a time) |
	+------+------+
	       |
	+------+------+
	|    Apply    |
	| read, parse |
	| transform,  |
	|   write     |
	+------+------+

🎯 Purpose:
- Describe a migration as a single Operation value (insert or reorder)
- Apply it to one file: the whole table is transformed in memory before anything is written
- Drive a file set sequentially and report each file through a Reporter

⚡ Failure policy:
The first failing file stops the run unless RunnerOptions.ContinueOnError is set, in which case
every file is attempted and the run fails with the number of failed files. Files migrated before
a failure stay migrated.

🔍 Example:

	op := operation.Insert("X", "D", 2)
	runner := operation.NewRunner(operation.RunnerOptions{Apply: operation.ApplyOptions{Atomic: true}}, reporter)
	summary, err := runner.RunDir(ctx, "./data", locate.Options{})
*/
package operation
