package optimize

// Target describes how many indices simplification should aim for, either as
// an absolute count or as a fraction of the current count.
type Target struct {
	count    int
	factor   float32
	absolute bool
}

// Count targets an absolute index count.
func Count(n int) Target {
	return Target{count: n, absolute: true}
}

// Multiplier targets a fraction of the current index count.
func Multiplier(f float32) Target {
	return Target{factor: f}
}

// IndexCount derives the target index count for a buffer currently holding
// current indices. The result is always a multiple of 3, at least 3 (one
// full triangle), and never more than current: simplification never grows a
// mesh. A non-positive multiplier therefore still requests one triangle.
func (t Target) IndexCount(current int) int {
	target := t.count
	if !t.absolute {
		target = int(float64(current) * float64(t.factor))
	}

	target = target / 3 * 3
	if target < 3 {
		target = 3
	}
	if target > current {
		target = current
	}
	return target
}
