package boundary

// Status is the closed set of outcome codes returned by boundary entry
// points. The numeric values are part of the ABI and never change.
type Status int32

const (
	StatusOK Status = iota

	// Handle failures.
	StatusNullTreePointer
	StatusNullStylePointer
	StatusInvalidNodeID

	// One rejection per dimension variant that a property class may refuse.
	StatusInvalidNone
	StatusInvalidAuto
	StatusInvalidMinContent
	StatusInvalidMaxContent
	StatusInvalidFitContentPx
	StatusInvalidFitContentPercent
	StatusInvalidFr

	// StatusNonFiniteValue rejects NaN or infinite payloads on units that
	// carry a numeric value. Aspect ratio is the documented exception and
	// never returns it.
	StatusNonFiniteValue

	// StatusInvalidEdge rejects an out-of-range edge selector.
	StatusInvalidEdge
)

var statusNames = [...]string{
	StatusOK:                       "ok",
	StatusNullTreePointer:          "null_tree_pointer",
	StatusNullStylePointer:         "null_style_pointer",
	StatusInvalidNodeID:            "invalid_node_id",
	StatusInvalidNone:              "invalid_none",
	StatusInvalidAuto:              "invalid_auto",
	StatusInvalidMinContent:        "invalid_min_content",
	StatusInvalidMaxContent:        "invalid_max_content",
	StatusInvalidFitContentPx:      "invalid_fit_content_px",
	StatusInvalidFitContentPercent: "invalid_fit_content_percent",
	StatusInvalidFr:                "invalid_fr",
	StatusNonFiniteValue:           "non_finite_value",
	StatusInvalidEdge:              "invalid_edge",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Result envelopes pair a status with a payload. The payload is only
// meaningful when the status is StatusOK; on failure it is the documented
// zero default for its type, never uninitialized.

// NodeResult carries a freshly created or looked-up node id.
type NodeResult struct {
	Status Status
	Value  NodeID
}

// IntResult carries a small integer such as a child count.
type IntResult struct {
	Status Status
	Value  int32
}

// LayoutResult carries a node's computed layout record.
type LayoutResult struct {
	Status Status
	Value  Layout
}

// StyleConstRefResult carries a read-only style reference.
type StyleConstRefResult struct {
	Status Status
	Value  StyleConstRef
}

// StyleMutRefResult carries a mutable style reference.
type StyleMutRefResult struct {
	Status Status
	Value  StyleMutRef
}
