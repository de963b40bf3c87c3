package spectro

import "testing"

func TestMapToColorSectorBoundaries(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		want Color
	}{
		{"red at zero", 0, Color{255, 0, 0}},
		{"yellow", 1.0 / 6.0, Color{255, 255, 0}},
		{"green", 2.0 / 6.0, Color{0, 255, 0}},
		{"cyan at half", 0.5, Color{0, 255, 255}},
		{"blue", 4.0 / 6.0, Color{0, 0, 255}},
		{"magenta", 5.0 / 6.0, Color{255, 0, 255}},
		{"red again at one", 1, Color{255, 0, 0}},
	}

	for _, tc := range cases {
		got := MapToColor(tc.v)
		if got != tc.want {
			t.Errorf("%s: MapToColor(%v) = %v, want %v", tc.name, tc.v, got, tc.want)
		}
	}
}

func TestMapToColorSeamWraps(t *testing.T) {
	// Hue 360 must land in the same sector as hue 0 so the ramp is
	// continuous across the wheel seam.
	if MapToColor(0) != MapToColor(1) {
		t.Errorf("seam mismatch: MapToColor(0) = %v, MapToColor(1) = %v",
			MapToColor(0), MapToColor(1))
	}
}

func TestMapToColorDeterministic(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		v := float64(i) / 1000
		if MapToColor(v) != MapToColor(v) {
			t.Fatalf("MapToColor(%v) not deterministic", v)
		}
	}
}

func TestMapToColorFullIntensity(t *testing.T) {
	// With saturation and brightness pinned at 1, every output color has
	// at least one saturated channel and at least one zero channel.
	for i := 0; i <= 360; i++ {
		v := float64(i) / 360
		c := MapToColor(v)
		if c.R != 255 && c.G != 255 && c.B != 255 {
			t.Errorf("MapToColor(%v) = %v: no channel at 255", v, c)
		}
		if c.R != 0 && c.G != 0 && c.B != 0 {
			t.Errorf("MapToColor(%v) = %v: no channel at 0", v, c)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := (Color{255, 0, 65}).Hex(); got != "#FF0041" {
		t.Errorf("Hex() = %q, want %q", got, "#FF0041")
	}
}
