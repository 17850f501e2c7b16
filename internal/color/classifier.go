package color

import "math"

// reference is one palette entry. Tolerance is the radius (in RGB space)
// within which a triple is considered a match for this colour.
type reference struct {
	name      string
	r, g, b   int
	tolerance float64
}

// palette is the fixed classification palette. Iteration order matters:
// the first entry whose tolerance sphere contains the input wins, so the
// saturated primaries come first and the near-whites last. Tolerances are
// calibrated so that pure colours match generously (60) while the whites
// stay tight (30-35) and don't swallow pale tints.
var palette = []reference{
	{name: "Red", r: 255, g: 0, b: 0, tolerance: 60},
	{name: "Green", r: 0, g: 255, b: 0, tolerance: 60},
	{name: "Blue", r: 0, g: 0, b: 255, tolerance: 60},
	{name: "Yellow", r: 255, g: 255, b: 0, tolerance: 50},
	{name: "Orange", r: 255, g: 165, b: 0, tolerance: 45},
	{name: "Purple", r: 128, g: 0, b: 128, tolerance: 50},
	{name: "Pink", r: 255, g: 105, b: 180, tolerance: 50},
	{name: "Cyan", r: 0, g: 255, b: 255, tolerance: 50},
	{name: "Warm White", r: 255, g: 244, b: 229, tolerance: 35},
	{name: "White", r: 255, g: 255, b: 255, tolerance: 30},
}

// Classify returns the name of the first palette colour whose tolerance
// sphere contains the given triple, and true. If no entry matches it
// returns "", false.
func Classify(r, g, b int) (string, bool) {
	for _, ref := range palette {
		if distance(r, g, b, ref.r, ref.g, ref.b) <= ref.tolerance {
			return ref.name, true
		}
	}
	return "", false
}

// distance is the Euclidean distance between two RGB triples.
func distance(r1, g1, b1, r2, g2, b2 int) float64 {
	dr := float64(r1 - r2)
	dg := float64(g1 - g2)
	db := float64(b1 - b2)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
