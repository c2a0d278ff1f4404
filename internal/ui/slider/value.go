package slider

import "math"

// Range bounds a slider's value. Values are multiples of Step counted from Min.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultRange is 0 to 100 in steps of 1.
func DefaultRange() Range {
	return Range{Min: 0, Max: 100, Step: 1}
}

// gridEpsilon absorbs float error when counting steps, so 0.3/0.1 counts
// as three steps rather than 2.9999999999999996.
const gridEpsilon = 1e-9

// Normalize makes r usable. Each field falls back on its own:
//   - the zero Range is DefaultRange;
//   - a non-positive or non-finite Step is 1;
//   - an unset Max (zero) with Min between 0 and 100 is 100, so
//     Range{Min: 10} spans 10..100;
//   - otherwise reversed bounds are swapped.
//
// Equal bounds with a step, such as Range{Step: 1}, stay an empty range.
func (r Range) Normalize() Range {
	if r == (Range{}) {
		return DefaultRange()
	}
	if r.Step <= 0 || math.IsNaN(r.Step) || math.IsInf(r.Step, 0) {
		r.Step = DefaultRange().Step
	}
	if r.Max == 0 && r.Min > 0 && r.Min < DefaultRange().Max {
		r.Max = DefaultRange().Max
	}
	if r.Max < r.Min {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

// steps counts whole steps from Min to the top of the grid.
func (r Range) steps() float64 {
	return math.Floor((r.Max-r.Min)/r.Step + gridEpsilon)
}

// top is the largest value on the step grid that does not exceed Max. A grid
// point within float error of Max is Max itself.
func (r Range) top() float64 {
	t := r.Min + r.steps()*r.Step
	if t >= r.Max || r.Max-t <= gridEpsilon*math.Max(r.Step, r.Max-r.Min) {
		return r.Max
	}
	return t
}

// Quantize rounds v to the nearest step counted from Min, halves rounding up.
// Values below the range give Min and values past the last step give the top
// of the grid, which is Max whenever the span is a whole number of steps.
func Quantize(v float64, r Range) float64 {
	r = r.Normalize()
	if math.IsNaN(v) {
		return r.Min
	}
	k := math.Floor((v-r.Min)/r.Step + 0.5)
	switch {
	case k <= 0:
		return r.Min
	case k >= r.steps():
		return r.top()
	}
	return r.Min + k*r.Step
}

// ValueFromPointer maps a pointer column over a track to a value. A track
// with no width maps everything to Min.
func ValueFromPointer(pointerX, trackLeft, trackWidth float64, r Range) float64 {
	r = r.Normalize()
	fraction := 0.0
	if trackWidth > 0 {
		fraction = clamp((pointerX-trackLeft)/trackWidth, 0, 1)
	}
	return Quantize(r.Min+fraction*(r.Max-r.Min), r)
}

// Percentage places value within the range as 0 to 100. An empty range is 0.
func Percentage(value float64, r Range) float64 {
	r = r.Normalize()
	if r.Max == r.Min || math.IsNaN(value) {
		return 0
	}
	return clamp((value-r.Min)/(r.Max-r.Min)*100, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
