package tilemenu

// FitRect returns inner moved the shortest distance needed to lie within outer
// shrunk by padding on every edge. The size of inner is never changed.
//
// Each axis is solved on its own. When inner plus padding is wider (or taller)
// than outer, inner is centered on that axis instead, splitting the overflow
// evenly between both edges.
func FitRect(inner, outer Rect, padding float64) Rect {
	inner.X = fitAxis(inner.X, inner.Width, outer.X, outer.Width, padding)
	inner.Y = fitAxis(inner.Y, inner.Height, outer.Y, outer.Height, padding)
	return inner
}

// fitAxis solves FitRect along one axis and returns the new minimum edge.
func fitAxis(pos, size, outerPos, outerSize, padding float64) float64 {
	lo := outerPos + padding
	hi := outerPos + outerSize - padding

	if size > hi-lo {
		return outerPos + (outerSize-size)/2
	}
	if pos < lo {
		return lo
	}
	if pos+size > hi {
		return hi - size
	}
	return pos
}
