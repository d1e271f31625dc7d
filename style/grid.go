package style

// GridPlacementKind identifies one variant of a grid placement.
type GridPlacementKind uint8

const (
	// PlacementAuto lets the auto-placement algorithm pick the line.
	PlacementAuto GridPlacementKind = iota
	// PlacementLine names a specific (1-based, possibly negative) grid line.
	PlacementLine
	// PlacementSpan counts tracks from the opposite placement.
	PlacementSpan
)

// GridPlacement is one side of a line-based grid placement.
type GridPlacement struct {
	Kind GridPlacementKind
	Line int16  // meaningful when Kind == PlacementLine
	Span uint16 // meaningful when Kind == PlacementSpan
}

func AutoPlacement() GridPlacement        { return GridPlacement{Kind: PlacementAuto} }
func LinePlacement(n int16) GridPlacement { return GridPlacement{Kind: PlacementLine, Line: n} }
func SpanPlacement(n uint16) GridPlacement {
	return GridPlacement{Kind: PlacementSpan, Span: n}
}

// GridLine is a grid item's placement on one axis: any two of start line,
// end line, and span determine the third.
type GridLine struct {
	Start GridPlacement
	End   GridPlacement
}

// GridLineFromRawParts builds a placement from the raw three-field form
// where zero means "unspecified" in every field. When both lines and a span
// are given, the lines win and the span is dropped.
func GridLineFromRawParts(start int16, span uint16, end int16) GridLine {
	switch {
	case start == 0 && span == 0 && end == 0:
		return GridLine{Start: AutoPlacement(), End: AutoPlacement()}
	case span == 0 && end == 0:
		return GridLine{Start: LinePlacement(start), End: AutoPlacement()}
	case start == 0 && end == 0:
		return GridLine{Start: SpanPlacement(span), End: AutoPlacement()}
	case start == 0 && span == 0:
		return GridLine{Start: AutoPlacement(), End: LinePlacement(end)}
	case span == 0:
		return GridLine{Start: LinePlacement(start), End: LinePlacement(end)}
	case start == 0:
		return GridLine{Start: SpanPlacement(span), End: LinePlacement(end)}
	case end == 0:
		return GridLine{Start: LinePlacement(start), End: SpanPlacement(span)}
	default:
		return GridLine{Start: LinePlacement(start), End: LinePlacement(end)}
	}
}

// RawParts is the inverse of GridLineFromRawParts. Placements that have no
// raw form (a span on both sides, or a span opposite an auto end) normalize
// to a start-side span.
func (l GridLine) RawParts() (start int16, span uint16, end int16) {
	switch {
	case l.Start.Kind == PlacementAuto && l.End.Kind == PlacementAuto:
		return 0, 0, 0
	case l.Start.Kind == PlacementLine && l.End.Kind == PlacementAuto:
		return l.Start.Line, 0, 0
	case l.Start.Kind == PlacementSpan && l.End.Kind == PlacementAuto:
		return 0, l.Start.Span, 0
	case l.Start.Kind == PlacementAuto && l.End.Kind == PlacementLine:
		return 0, 0, l.End.Line
	case l.Start.Kind == PlacementLine && l.End.Kind == PlacementLine:
		return l.Start.Line, 0, l.End.Line
	case l.Start.Kind == PlacementSpan && l.End.Kind == PlacementLine:
		return 0, l.Start.Span, l.End.Line
	case l.Start.Kind == PlacementLine && l.End.Kind == PlacementSpan:
		return l.Start.Line, l.End.Span, 0
	case l.Start.Kind == PlacementSpan:
		return 0, l.Start.Span, 0
	default: // auto start, span end
		return 0, l.End.Span, 0
	}
}

// AutoGridLine is the default placement on both axes.
func AutoGridLine() GridLine {
	return GridLine{Start: AutoPlacement(), End: AutoPlacement()}
}
