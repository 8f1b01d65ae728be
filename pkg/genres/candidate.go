package genres

// VariantType identifies the generation strategy that produced a candidate
// name. The type later steers level assignment and provenance notes.
type VariantType string

// Variant types emitted by the combination generator.
const (
	VariantRegionalFusion VariantType = "regional_fusion"     // Two regions blended, optionally with a base genre
	VariantEra            VariantType = "era_variant"         // Historical era applied to a base genre
	VariantInstrument     VariantType = "instrument_based"    // Lead instrument applied to a base genre
	VariantElectronic     VariantType = "electronic_variant"  // Electronic modifier applied to a base genre
	VariantTraditional    VariantType = "traditional_variant" // Regional traditional modifier applied to a base genre
	VariantMicro          VariantType = "micro_genre"         // Randomly assembled niche genre

	// VariantMain marks the seeded root categories. It is never produced by
	// the generator itself.
	VariantMain VariantType = "main"
)

// String returns the string representation of a VariantType.
func (v VariantType) String() string {
	return string(v)
}

// Valid reports whether v is one of the six generator-produced variant types.
func (v VariantType) Valid() bool {
	switch v {
	case VariantRegionalFusion, VariantEra, VariantInstrument,
		VariantElectronic, VariantTraditional, VariantMicro:
		return true
	}
	return false
}

// Candidate is a generated genre name that has not yet been enriched or
// placed in the hierarchy.
type Candidate struct {
	Name       string      `json:"name" yaml:"name"`             // Proposed genre name
	Type       VariantType `json:"type" yaml:"type"`             // Strategy that produced the name
	Components []string    `json:"components" yaml:"components"` // Vocabulary tokens the name was assembled from
}
