// Package quality validates generated entries against structural and
// format invariants. Every check runs so a bad entry reports all of its
// violations, not just the first.
package quality

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/genreforge/genreforge/pkg/constants"
	pkgerrors "github.com/genreforge/genreforge/pkg/errors"
	"github.com/genreforge/genreforge/pkg/genres"
)

// DefaultPeriodPattern accepts spans like "1600-1750", "3000BC-500AD",
// and "1950-now".
const DefaultPeriodPattern = `^\d{1,4}(BC)?-(\d{1,4}(AD)?|now)$`

// Validator checks entries against the configured invariants. The period
// pattern is compiled once at construction.
type Validator struct {
	maxNameLength int
	period        *regexp.Regexp
}

// Option defines a function that configures a Validator.
type Option func(*Validator) error

// WithMaxNameLength overrides the maximum accepted name length.
func WithMaxNameLength(n int) Option {
	return func(v *Validator) error {
		if n <= 0 {
			return pkgerrors.NewValidationError("max_name_length", strconv.Itoa(n), "must be positive")
		}
		v.maxNameLength = n
		return nil
	}
}

// WithPeriodPattern overrides the period format expression.
func WithPeriodPattern(pattern string) Option {
	return func(v *Validator) error {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return pkgerrors.WrapParse("regexp", "period pattern", err)
		}
		v.period = re
		return nil
	}
}

// New creates a Validator with the default invariants.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{
		maxNameLength: constants.MaxNameLength,
		period:        regexp.MustCompile(DefaultPeriodPattern),
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Check returns every violation found on the entry. An empty slice means
// the entry is valid.
func (v *Validator) Check(e genres.Entry) []string {
	var violations []string

	if n := utf8.RuneCountInString(e.Name); n > v.maxNameLength {
		violations = append(violations, fmt.Sprintf("Name too long: %d chars", n))
	}
	if !v.period.MatchString(e.Period) {
		violations = append(violations, fmt.Sprintf("Invalid period format: %s", e.Period))
	}
	if !e.Status.Valid() {
		violations = append(violations, fmt.Sprintf("Invalid status: %s", e.Status))
	}
	if e.Level < constants.MinHierarchyLevel || e.Level > constants.MaxHierarchyLevel {
		violations = append(violations, fmt.Sprintf("Invalid level: %d", e.Level))
	}
	if e.Level > constants.MinHierarchyLevel && e.ParentID == 0 {
		violations = append(violations, "Missing parent id for non-root genre")
	}

	return violations
}

// CheckBatch partitions entries into valid ones, preserving input order,
// and one formatted problem line per violation.
func (v *Validator) CheckBatch(entries []genres.Entry) ([]genres.Entry, []string) {
	valid := make([]genres.Entry, 0, len(entries))
	var problems []string

	for _, e := range entries {
		violations := v.Check(e)
		if len(violations) == 0 {
			valid = append(valid, e)
			continue
		}
		for _, violation := range violations {
			problems = append(problems, fmt.Sprintf("Entry %d (%s): %s", e.ID, e.Name, violation))
		}
	}

	return valid, problems
}
