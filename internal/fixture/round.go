package fixture

import "math"

// CoordGrid is the rounding granularity for all derived coordinates.
// Values that end up as OpenSCAD literals are snapped to this grid to keep
// floating-point noise out of the generated geometry.
const CoordGrid = 0.01

// RoundTo snaps x to the given grid, then rounds the result to two decimal
// places. Both stages use round-half-to-even; callers depend on RoundTo
// being idempotent.
func RoundTo(base, x float64) float64 {
	snapped := math.RoundToEven(x/base) * base
	return math.RoundToEven(snapped*100) / 100
}
