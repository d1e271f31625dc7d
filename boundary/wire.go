package boundary

// Unit tags one variant of a wire Dimension. The tag order is part of the
// ABI and never changes.
type Unit uint8

const (
	// UnitNone unsets an optional value. It is never a legal write for the
	// box properties and appears on the wire only in zero-value defaults.
	UnitNone Unit = iota
	UnitLength
	UnitPercent
	UnitMinContent
	UnitMaxContent
	UnitFitContentPx
	UnitFitContentPercent
	UnitAuto
	UnitFr
)

var unitNames = [...]string{
	UnitNone:              "none",
	UnitLength:            "length",
	UnitPercent:           "percent",
	UnitMinContent:        "min-content",
	UnitMaxContent:        "max-content",
	UnitFitContentPx:      "fit-content-px",
	UnitFitContentPercent: "fit-content-percent",
	UnitAuto:              "auto",
	UnitFr:                "fr",
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "unknown"
}

// CarriesValue reports whether the unit's numeric payload is meaningful.
// For the other units the payload is ignored on decode and zero on encode.
func (u Unit) CarriesValue() bool {
	switch u {
	case UnitLength, UnitPercent, UnitFitContentPx, UnitFitContentPercent, UnitFr:
		return true
	}
	return false
}

// Dimension is the wire form of one sizing value. The zero value (unit none,
// value 0) is the documented default returned by getters given a null handle.
type Dimension struct {
	Value float32
	Unit  Unit
}

// DimensionFromRaw pairs a raw value and unit into a wire Dimension.
func DimensionFromRaw(value float32, unit Unit) Dimension {
	return Dimension{Value: value, Unit: unit}
}

// Edge selects which edges a batch setter writes. It is only ever an
// argument; styles never store an Edge.
type Edge uint8

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
	// EdgeVertical writes the top and bottom edges.
	EdgeVertical
	// EdgeHorizontal writes the left and right edges.
	EdgeHorizontal
	// EdgeAll writes all four edges.
	EdgeAll
)

// GridPlacement is the wire form of a line-based grid placement. Zero in any
// field means that part is unspecified; the native side derives the third
// value from the two that are given.
type GridPlacement struct {
	Start int16
	End   int16
	Span  uint16
}

// Size is a plain width/height pair of definite values.
type Size struct {
	Width  float32
	Height float32
}

// Layout is the flat form of a node's computed layout, in the parent's
// coordinate space.
type Layout struct {
	X             float32
	Y             float32
	Width         float32
	Height        float32
	ContentWidth  float32
	ContentHeight float32
	BorderLeft    float32
	BorderRight   float32
	BorderTop     float32
	BorderBottom  float32
}

// MeasureMode describes the sizing constraint passed to a measure callback.
type MeasureMode uint8

const (
	MeasureExact MeasureMode = iota
	MeasureFitContent
	MeasureMinContent
	MeasureMaxContent
)
