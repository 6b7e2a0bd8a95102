/*
Package operation runs a replacement pass over a site.

	+-----------+     +-----------+     +-----------+
	|  Locate   | --> |  Process  | --> |  Report   |
	| (pages)   |     | (per page)|     | (summary) |
	+-----------+     +-----------+     +-----------+

🔄 Flow:
 1. Locate lists the candidate pages once: named root pages, the root glob,
    then every *.html file of each subdirectory, minus exclusions
 2. ProcessFile reads a page, replaces its blocks and writes it back only
    when the text changed
 3. Runner visits the candidates one at a time and prints the summary

Pages are processed sequentially and every page is attempted. A failure on
one page becomes an error outcome for that page and the run moves on. Nothing
is written atomically and no backup is kept.

Plan computes the same outcomes without writing, concurrently, for the status
command.

🔍 Example:

	runner, err := operation.NewRunner(operation.Options{
		Config: cfg,
		Files:  status.New(cfg.BaseDir),
		Logger: logger,
	})
	summary, err := runner.Run(ctx)
*/
package operation
