package spectro

import "testing"

func TestNewFramebufferZeroed(t *testing.T) {
	fb := New(8, 6)
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if c := fb.At(x, y); c != (Color{}) {
				t.Fatalf("pixel (%d,%d) = %v before any push, want zero", x, y, c)
			}
			if a := fb.Alpha(x, y); a != 0 {
				t.Fatalf("alpha (%d,%d) = %d before any push, want 0", x, y, a)
			}
		}
	}
}

func TestPushTouchesOnlyLastColumn(t *testing.T) {
	fb := New(8, 4)
	frame := make([]byte, 4)
	for i := range frame {
		frame[i] = 128
	}
	fb.Push(frame)

	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width()-1; x++ {
			if fb.Alpha(x, y) != 0 {
				t.Errorf("column %d written after a single push", x)
			}
		}
		if fb.Alpha(fb.Width()-1, y) != 0xFF {
			t.Errorf("row %d of last column not written", y)
		}
		want := MapToColor(128.0 / 255)
		if got := fb.At(fb.Width()-1, y); got != want {
			t.Errorf("row %d of last column = %v, want %v", y, got, want)
		}
	}
}

func TestPushShiftLaw(t *testing.T) {
	// After w pushes of distinct frames F_0..F_{w-1}, column x must hold
	// F_x: the buffer is exactly the last w frames in arrival order.
	const w, h = 6, 4
	fb := New(w, h)

	for i := 0; i < w; i++ {
		frame := make([]byte, h)
		for j := range frame {
			frame[j] = byte(i * 40)
		}
		fb.Push(frame)
	}

	for x := 0; x < w; x++ {
		want := MapToColor(float64(x*40) / 255)
		for y := 0; y < h; y++ {
			if got := fb.At(x, y); got != want {
				t.Errorf("column %d row %d = %v, want frame %d color %v", x, y, got, x, want)
			}
		}
	}
}

func TestPushOldestDiscarded(t *testing.T) {
	const w, h = 4, 2
	fb := New(w, h)

	marker := []byte{255, 255}
	fb.Push(marker)
	for i := 0; i < w; i++ {
		fb.Push(make([]byte, h))
	}

	// The marker frame fell off the left edge; everything left is the
	// zero-magnitude color.
	want := MapToColor(0)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if got := fb.At(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v after marker eviction", x, y, got, want)
			}
		}
	}
}

func TestPushZeroFramesConverge(t *testing.T) {
	const w, h = 5, 3
	fb := New(w, h)

	for i := 0; i < w; i++ {
		fb.Push(make([]byte, h))
	}

	want := MapToColor(0)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if fb.At(x, y) != want {
				t.Fatalf("buffer not uniform after %d zero pushes", w)
			}
			if fb.Alpha(x, y) != 0xFF {
				t.Fatalf("alpha not saturated after %d zero pushes", w)
			}
		}
	}
}

func TestPushNearestFloorSampling(t *testing.T) {
	// Buffer taller than the frame: rows repeat bins, no interpolation.
	fb := New(2, 4)
	fb.Push([]byte{10, 200})

	x := fb.Width() - 1
	low := MapToColor(10.0 / 255)
	high := MapToColor(200.0 / 255)

	for _, tc := range []struct {
		y    int
		want Color
	}{
		{0, low}, {1, low}, {2, high}, {3, high},
	} {
		if got := fb.At(x, tc.y); got != tc.want {
			t.Errorf("row %d = %v, want %v", tc.y, got, tc.want)
		}
	}
}

func TestPushEmptyFrameDefaultsToZero(t *testing.T) {
	fb := New(3, 2)
	fb.Push(nil)

	want := MapToColor(0)
	x := fb.Width() - 1
	for y := 0; y < fb.Height(); y++ {
		if got := fb.At(x, y); got != want {
			t.Errorf("row %d = %v, want zero-sample color %v", y, got, want)
		}
	}
}
