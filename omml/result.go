package omml

// Result holds the output of a conversion.
type Result struct {
	LaTeX    string    `json:"latex"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningUnknownElement WarningType = "unknown_element"
	WarningMissingChild   WarningType = "missing_child"
	WarningRaggedMatrix   WarningType = "ragged_matrix"
	WarningDepthExceeded  WarningType = "depth_exceeded"
)

// Warning represents a non-fatal issue encountered during conversion.
// Conversion always produces output; warnings flag places where it degraded
// and a human should review the formula.
type Warning struct {
	Type    WarningType `json:"type"`
	Element string      `json:"element,omitempty"`
	Message string      `json:"message"`
}
