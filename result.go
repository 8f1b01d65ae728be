package genreforge

import (
	"fmt"
	"time"
)

// Result summarizes a completed generation run.
type Result struct {
	RunID             string        // unique identifier for the run
	Generated         int           // valid entries accumulated across batches, before merging
	DuplicatesRemoved int           // entries absorbed by duplicate merging
	ValidationErrors  int           // entries rejected during batch validation
	Final             int           // entries in the consolidated catalog
	Problems          []string      // first few problems from the final validation pass
	Elapsed           time.Duration // wall clock duration of the run
	DryRun            bool          // whether the catalog was left untouched
}

// Rate returns final genres produced per second of run time.
func (r *Result) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Final) / r.Elapsed.Seconds()
}

// Summary returns a one-line human readable account of the run.
func (r *Result) Summary() string {
	summary := fmt.Sprintf("%d genres in %.1fs (%d duplicates merged, %d validation errors)",
		r.Final, r.Elapsed.Seconds(), r.DuplicatesRemoved, r.ValidationErrors)
	if r.DryRun {
		summary += " (dry run)"
	}
	return summary
}
