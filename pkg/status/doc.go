/*
Package status writes transformed tables back to disk and describes what happened to each file.

	+-------------+        +-------------+
	|  operation  | -----> |   status    |
	| (transform) |        |  (storage)  |
	+-------------+        +------+------+
	                              |
	                 +------------+------------+
	                 |                         |
	           +-----+-----+             +-----+-----+
	           |  Writer   |             | Formatter |
	           |  (disk)   |             | (console) |
	           +-----------+             +-----------+

🎯 Purpose:
- Replace a file's content safely (temp file in the same directory, then rename)
- Optionally keep a .bak copy of the original
- Name the outcome of each file (modified, unchanged, planned, failed)
- Format per-file and progress lines for the console

🔍 Example:

	w := status.NewWriter(status.WriterOptions{Atomic: true, Backup: true})
	err := w.WriteFile(ctx, "data/users.csv", content)
*/
package status
