package color

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		r, g, b   int
		wantName  string
		wantMatch bool
	}{
		{"pure red", 255, 0, 0, "Red", true},
		{"red within tolerance", 230, 20, 10, "Red", true},
		{"pure green", 0, 255, 0, "Green", true},
		{"pure blue", 0, 0, 255, "Blue", true},
		{"orange", 250, 160, 10, "Orange", true},
		{"cyan", 10, 245, 250, "Cyan", true},
		{"near black", 1, 1, 1, "", false},
		{"mid grey", 128, 128, 128, "", false},
		{"teal outside every sphere", 0, 128, 128, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.r, tt.g, tt.b)
			if ok != tt.wantMatch {
				t.Fatalf("Classify(%d,%d,%d) match = %v, want %v", tt.r, tt.g, tt.b, ok, tt.wantMatch)
			}
			if ok && got != tt.wantName {
				t.Errorf("Classify(%d,%d,%d) = %q, want %q", tt.r, tt.g, tt.b, got, tt.wantName)
			}
		})
	}
}

// TestClassify_OrderWins pins the first-match tie-break: triples inside both
// the Warm White and White spheres must classify by palette order, not by
// whichever centre is closer.
func TestClassify_OrderWins(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
	}{
		{"pure white", 255, 255, 255},   // dist 28.2 to Warm White, 0 to White
		{"pale tint", 255, 249, 240},    // inside both spheres
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.r, tt.g, tt.b)
			if !ok {
				t.Fatal("expected a match")
			}
			if got != "Warm White" {
				t.Errorf("Classify(%d,%d,%d) = %q, want %q", tt.r, tt.g, tt.b, got, "Warm White")
			}
		})
	}
}
