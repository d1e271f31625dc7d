package style

import "math"

// DimensionTag identifies one variant of a Dimension value.
type DimensionTag uint8

const (
	TagLength DimensionTag = iota
	TagPercent
	TagAuto
	TagMinContent
	TagMaxContent
	TagFitContentPx
	TagFitContentPercent
	TagFr
)

var tagNames = [...]string{
	TagLength:            "length",
	TagPercent:           "percent",
	TagAuto:              "auto",
	TagMinContent:        "min-content",
	TagMaxContent:        "max-content",
	TagFitContentPx:      "fit-content-px",
	TagFitContentPercent: "fit-content-percent",
	TagFr:                "fr",
}

func (t DimensionTag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// HasPayload reports whether the variant carries a numeric value.
// Payloadless variants always store a zero Value.
func (t DimensionTag) HasPayload() bool {
	switch t {
	case TagLength, TagPercent, TagFitContentPx, TagFitContentPercent, TagFr:
		return true
	}
	return false
}

// Dimension is one sizing value: an exact length, a percentage (as a fraction
// of the containing size), an automatic value, content-based sizing, a
// fit-content limit, or a fractional grid-track weight. Not every style
// property accepts every variant; the accepting set is enforced at the
// boundary, not here.
type Dimension struct {
	Value float32
	Tag   DimensionTag
}

func Length(v float32) Dimension  { return Dimension{Tag: TagLength, Value: v} }
func Percent(v float32) Dimension { return Dimension{Tag: TagPercent, Value: v} }
func Auto() Dimension             { return Dimension{Tag: TagAuto} }
func MinContent() Dimension       { return Dimension{Tag: TagMinContent} }
func MaxContent() Dimension       { return Dimension{Tag: TagMaxContent} }

func FitContentPx(limit float32) Dimension {
	return Dimension{Tag: TagFitContentPx, Value: limit}
}

func FitContentPercent(limit float32) Dimension {
	return Dimension{Tag: TagFitContentPercent, Value: limit}
}

// Fr is a fractional grid-track weight. It is only meaningful for track
// sizing and is rejected by every box-property accepting set.
func Fr(weight float32) Dimension { return Dimension{Tag: TagFr, Value: weight} }

func (d Dimension) IsAuto() bool { return d.Tag == TagAuto }

// Resolve returns the definite value of the dimension against the given
// containing size. The second result is false when the dimension has no
// definite value in this context (auto, content keywords, fr, or a percentage
// of an indefinite containing size).
func (d Dimension) Resolve(containing float32) (float32, bool) {
	switch d.Tag {
	case TagLength:
		return d.Value, true
	case TagPercent:
		if math.IsNaN(float64(containing)) {
			return 0, false
		}
		return d.Value * containing, true
	}
	return 0, false
}

// ResolveOrZero is Resolve with a zero fallback, for edge properties where
// an indefinite value contributes no space.
func (d Dimension) ResolveOrZero(containing float32) float32 {
	v, ok := d.Resolve(containing)
	if !ok {
		return 0
	}
	return v
}
