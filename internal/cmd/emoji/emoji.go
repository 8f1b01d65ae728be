// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all genreforge commands.
package emoji

const (
	// Success represents successful completion of an operation.
	// Used for: written export files, clean validation runs.
	Success = "✓"

	// Error represents failures or violated quality rules.
	// Used for: validation problems found in the final catalog.
	Error = "✗"

	// Warning represents warnings or non-critical issues.
	// Used for: problems reported alongside an otherwise successful run.
	Warning = "!"
)
