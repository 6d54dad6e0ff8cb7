package fixture

// normalize maps an absolute board position into fixture-local
// coordinates: origin-relative, snapped to the coordinate grid, and
// mirrored about the board width for back-side probing.
//
// The mirror subtracts the already-rounded relative X from the width
// rather than rounding after the subtraction. Near grid boundaries the two
// orderings differ by one grid step; downstream fixture models were tuned
// against this ordering, so it must not change.
func normalize(x, y float64, geom Geometry, mirror bool) Point {
	rx := RoundTo(CoordGrid, x-geom.Origin.X)
	if mirror {
		rx = geom.Width - rx
	}
	ry := RoundTo(CoordGrid, y-geom.Origin.Y)
	return Point{X: rx, Y: ry}
}
