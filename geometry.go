package layoutboundary

// Point is an axis-aligned pair of values, one per screen axis.
type Point[T any] struct {
	X T
	Y T
}

// Size is a width/height pair.
type Size[T any] struct {
	Width  T
	Height T
}

// Rect holds one value per box edge.
type Rect[T any] struct {
	Left   T
	Right  T
	Top    T
	Bottom T
}

// SumAxes returns the summed horizontal and vertical components of a float
// rect. Layout code uses it to collapse padding and border rects into the
// space they consume on each axis.
func SumAxes(r Rect[float32]) Size[float32] {
	return Size[float32]{Width: r.Left + r.Right, Height: r.Top + r.Bottom}
}
