package racer

import "math"

// RoadScroller tracks the scroll offset of the dashed center line.
// It has no effect on gameplay.
type RoadScroller struct {
	offset float64
	dash   float64
	gap    float64
	factor float64
}

// NewRoadScroller creates a scroller for a dash/gap pattern. factor scales
// obstacle speed into scroll speed.
func NewRoadScroller(dash, gap, factor float64) *RoadScroller {
	return &RoadScroller{dash: dash, gap: gap, factor: factor}
}

// Advance scrolls the road for one step at the given obstacle speed.
func (r *RoadScroller) Advance(speed, dt float64) {
	r.offset -= speed * r.factor * dt
}

// Offset returns the raw scroll offset. It only ever decreases.
func (r *RoadScroller) Offset() float64 {
	return r.offset
}

// Period returns the length of one dash plus one gap.
func (r *RoadScroller) Period() float64 {
	return r.dash + r.gap
}

// Phase returns the offset folded into [0, Period).
func (r *RoadScroller) Phase() float64 {
	p := r.Period()
	if p <= 0 {
		return 0
	}
	m := math.Mod(r.offset, p)
	if m < 0 {
		m += p
	}
	return m
}

// Dashes returns the vertical spans of the dashes covering [0, height).
// The first span starts above the top edge so the line never shows a gap
// while scrolling in.
func (r *RoadScroller) Dashes(height float64) [][2]float64 {
	p := r.Period()
	if p <= 0 || height <= 0 {
		return nil
	}
	var spans [][2]float64
	for y := -r.Phase() - p; y < height; y += p {
		top := math.Max(0, y)
		bottom := math.Min(height, y+r.dash)
		if bottom > top {
			spans = append(spans, [2]float64{top, bottom})
		}
	}
	return spans
}

// Reset puts the road back at the start.
func (r *RoadScroller) Reset() {
	r.offset = 0
}
