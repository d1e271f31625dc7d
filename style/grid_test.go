package style

import "testing"

func TestGridLineFromRawParts(t *testing.T) {
	tests := []struct {
		name               string
		start              int16
		span               uint16
		end                int16
		wantStart, wantEnd GridPlacement
	}{
		{"all zero", 0, 0, 0, AutoPlacement(), AutoPlacement()},
		{"start line", 3, 0, 0, LinePlacement(3), AutoPlacement()},
		{"negative start", -1, 0, 0, LinePlacement(-1), AutoPlacement()},
		{"span only", 0, 2, 0, SpanPlacement(2), AutoPlacement()},
		{"end line", 0, 0, 4, AutoPlacement(), LinePlacement(4)},
		{"both lines", 1, 0, 4, LinePlacement(1), LinePlacement(4)},
		{"span to end", 0, 2, 5, SpanPlacement(2), LinePlacement(5)},
		{"start with span", 2, 3, 0, LinePlacement(2), SpanPlacement(3)},
		{"lines win over span", 1, 9, 4, LinePlacement(1), LinePlacement(4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GridLineFromRawParts(tt.start, tt.span, tt.end)
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Fatalf("got %+v / %+v, want %+v / %+v", got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestRawPartsInverse(t *testing.T) {
	// Every raw triple the decoder can produce must survive the trip back,
	// except the redundant-span form which drops the span.
	triples := []struct {
		start int16
		span  uint16
		end   int16
	}{
		{0, 0, 0}, {3, 0, 0}, {-1, 0, 0}, {0, 2, 0}, {0, 0, 4},
		{1, 0, 4}, {0, 2, 5}, {2, 3, 0},
	}
	for _, tr := range triples {
		line := GridLineFromRawParts(tr.start, tr.span, tr.end)
		s, sp, e := line.RawParts()
		if s != tr.start || sp != tr.span || e != tr.end {
			t.Errorf("(%d,%d,%d) round tripped to (%d,%d,%d)", tr.start, tr.span, tr.end, s, sp, e)
		}
	}
}

func TestRawPartsNormalizesDoubleSpan(t *testing.T) {
	line := GridLine{Start: SpanPlacement(2), End: SpanPlacement(3)}
	s, sp, e := line.RawParts()
	if s != 0 || sp != 2 || e != 0 {
		t.Fatalf("double span flattened to (%d,%d,%d)", s, sp, e)
	}
}
