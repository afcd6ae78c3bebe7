// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// IOError indicates an unexpected filesystem or config failure.
	IOError = 1

	// DomainError indicates a refused or impossible task-list operation:
	// missing file or id, existing file, bad header, disallowed transition,
	// nothing active, or cleanup with unfinished items.
	DomainError = 2

	// UsageError indicates bad arguments: unknown command or flag, missing
	// required flag.
	UsageError = 2
)
