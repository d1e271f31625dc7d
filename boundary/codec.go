package boundary

import (
	"math"

	"github.com/flexframe/layout-boundary/style"
)

// AcceptSet names the set of dimension variants one property class accepts.
// Parameterizing the decoder by the accepting set keeps the several dozen
// property accessors on a single conversion path instead of each carrying
// its own near-copy of the rules.
type AcceptSet uint8

const (
	// AcceptLengthPercentage admits exact lengths and percentages only:
	// padding, border, and gaps.
	AcceptLengthPercentage AcceptSet = iota
	// AcceptLengthPercentageAuto additionally admits auto: margin and inset.
	AcceptLengthPercentageAuto
	// AcceptDimension is the sizing class: size, min/max size, flex basis.
	// It currently admits the same variants as AcceptLengthPercentageAuto
	// but is a distinct class on the wire contract.
	AcceptDimension
)

func (a AcceptSet) accepts(u Unit) bool {
	switch u {
	case UnitLength, UnitPercent:
		return true
	case UnitAuto:
		return a == AcceptLengthPercentageAuto || a == AcceptDimension
	}
	return false
}

// rejectionStatus names the status for a unit refused by an accepting set.
// Tags beyond the enumeration are refused like the none tag.
func rejectionStatus(u Unit) Status {
	switch u {
	case UnitAuto:
		return StatusInvalidAuto
	case UnitMinContent:
		return StatusInvalidMinContent
	case UnitMaxContent:
		return StatusInvalidMaxContent
	case UnitFitContentPx:
		return StatusInvalidFitContentPx
	case UnitFitContentPercent:
		return StatusInvalidFitContentPercent
	case UnitFr:
		return StatusInvalidFr
	default:
		return StatusInvalidNone
	}
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// decodeDimension converts a wire value/unit pair into a native dimension,
// constrained by the accepting set of the call site. It fails with the
// status naming the refused unit, or StatusNonFiniteValue for NaN and
// infinite payloads on value-carrying units. On failure the native result
// is meaningless and the caller must not apply it.
func decodeDimension(value float32, unit Unit, accept AcceptSet) (style.Dimension, Status) {
	if !accept.accepts(unit) {
		return style.Dimension{}, rejectionStatus(unit)
	}
	if unit.CarriesValue() && !isFinite(value) {
		return style.Dimension{}, StatusNonFiniteValue
	}
	switch unit {
	case UnitLength:
		return style.Length(value), StatusOK
	case UnitPercent:
		return style.Percent(value), StatusOK
	case UnitAuto:
		return style.Auto(), StatusOK
	case UnitMinContent:
		return style.MinContent(), StatusOK
	case UnitMaxContent:
		return style.MaxContent(), StatusOK
	case UnitFitContentPx:
		return style.FitContentPx(value), StatusOK
	case UnitFitContentPercent:
		return style.FitContentPercent(value), StatusOK
	default: // UnitFr; accepts() admits nothing else
		return style.Fr(value), StatusOK
	}
}

// encodeDimension converts a native dimension to its wire form. It is total:
// every native variant has exactly one wire tag, and payloadless variants
// encode a zero value.
func encodeDimension(d style.Dimension) Dimension {
	switch d.Tag {
	case style.TagLength:
		return Dimension{Unit: UnitLength, Value: d.Value}
	case style.TagPercent:
		return Dimension{Unit: UnitPercent, Value: d.Value}
	case style.TagAuto:
		return Dimension{Unit: UnitAuto}
	case style.TagMinContent:
		return Dimension{Unit: UnitMinContent}
	case style.TagMaxContent:
		return Dimension{Unit: UnitMaxContent}
	case style.TagFitContentPx:
		return Dimension{Unit: UnitFitContentPx, Value: d.Value}
	case style.TagFitContentPercent:
		return Dimension{Unit: UnitFitContentPercent, Value: d.Value}
	default:
		return Dimension{Unit: UnitFr, Value: d.Value}
	}
}

// decodeGridPlacement rebuilds the native two-of-three placement from the
// wire triple. There is no failure mode: every triple, including all-zero,
// is a legal if degenerate placement. Derivation of the implied third field
// is delegated to the style package so this codec and the engine can never
// disagree.
func decodeGridPlacement(p GridPlacement) style.GridLine {
	return style.GridLineFromRawParts(p.Start, p.Span, p.End)
}

// encodeGridPlacement flattens a native placement to the wire triple.
func encodeGridPlacement(l style.GridLine) GridPlacement {
	start, span, end := l.RawParts()
	return GridPlacement{Start: start, End: end, Span: span}
}
