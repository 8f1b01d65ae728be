// Package genres defines the taxonomy data model shared by every pipeline
// stage: the Entry record, generation candidates, the concurrent-safe Entries
// collection, and dataset statistics.
package genres

// Entry represents one taxonomy record. Entries are immutable after
// construction; merging produces a replacement entry rather than mutating an
// existing one.
type Entry struct {
	// Core identity
	ID       int64  `json:"id" yaml:"id"`                                   // Unique identifier, assigned monotonically and never reused
	Name     string `json:"name" yaml:"name"`                               // Display name (not guaranteed unique before merging)
	Level    int    `json:"level" yaml:"level"`                             // Hierarchy depth, 1 (root) through 5
	ParentID int64  `json:"parent_id,omitempty" yaml:"parent_id,omitempty"` // Parent entry ID, 0 for roots

	// Inferred attributes
	Region        string `json:"region" yaml:"region"`                 // Geographic origin
	Language      string `json:"language" yaml:"language"`             // Dominant language code
	Period        string `json:"period" yaml:"period"`                 // Active period, e.g. "1600-1750" or "1960-now"
	Status        Status `json:"status" yaml:"status"`                 // Lifecycle status
	Instruments   string `json:"instruments" yaml:"instruments"`       // Slash-joined instrument list, at most 5 distinct
	Pioneers      string `json:"pioneers" yaml:"pioneers"`             // Slash-joined founding artists
	Artists       string `json:"artists" yaml:"artists"`               // Slash-joined notable artists
	Works         string `json:"works" yaml:"works"`                   // Slash-joined famous works with years
	Source        string `json:"source" yaml:"source"`                 // Provenance note
	BPM           string `json:"bpm" yaml:"bpm"`                       // Tempo range, e.g. "120-150"
	TimeSignature string `json:"time_signature" yaml:"time_signature"` // Dominant meter, e.g. "4/4"
}

// IsRoot reports whether the entry sits at the top of the hierarchy.
func (e Entry) IsRoot() bool {
	return e.Level == 1 && e.ParentID == 0
}

// WithAttributes returns a copy of e with all inferred attribute fields set
// from a. Identity fields (ID, Name, Level, ParentID) are left untouched.
func (e Entry) WithAttributes(a Attributes) Entry {
	e.Region = a.Region
	e.Language = a.Language
	e.Period = a.Period
	e.Status = a.Status
	e.Instruments = a.Instruments
	e.Pioneers = a.Pioneers
	e.Artists = a.Artists
	e.Works = a.Works
	e.Source = a.Source
	e.BPM = a.BPM
	e.TimeSignature = a.TimeSignature
	return e
}

// Attributes holds the inferred, non-identity fields of an Entry. Attribute
// inference produces one of these per candidate name; the hierarchy assigner
// folds it into the final Entry.
type Attributes struct {
	Region        string `json:"region" yaml:"region"`
	Language      string `json:"language" yaml:"language"`
	Period        string `json:"period" yaml:"period"`
	Status        Status `json:"status" yaml:"status"`
	Instruments   string `json:"instruments" yaml:"instruments"`
	Pioneers      string `json:"pioneers" yaml:"pioneers"`
	Artists       string `json:"artists" yaml:"artists"`
	Works         string `json:"works" yaml:"works"`
	Source        string `json:"source" yaml:"source"`
	BPM           string `json:"bpm" yaml:"bpm"`
	TimeSignature string `json:"time_signature" yaml:"time_signature"`
}

// Status represents the lifecycle state of a genre.
type Status string

// Lifecycle status codes.
const (
	StatusActive   Status = "A" // Still actively practiced
	StatusHistoric Status = "H" // Historic, period has closed
	StatusEmerging Status = "E" // Emerging or newly coined
	StatusExtinct  Status = "X" // Extinct, no longer practiced
)

// String returns the single-letter status code.
func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the four known lifecycle codes.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusHistoric, StatusEmerging, StatusExtinct:
		return true
	}
	return false
}
