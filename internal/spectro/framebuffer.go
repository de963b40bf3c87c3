package spectro

// Framebuffer is a scrolling w×h RGBA pixel history backing the
// spectrogram display. Column w-1 always holds the most recent frame,
// column 0 the oldest retained; anything older is gone for good.
type Framebuffer struct {
	w, h int
	pix  []uint8 // RGBA, row-major: offset (y*w + x) * 4
}

// New allocates a zeroed framebuffer. Every pixel starts fully
// transparent black until the first Push.
func New(w, h int) *Framebuffer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Framebuffer{w: w, h: h, pix: make([]uint8, w*h*4)}
}

// Width returns the number of history columns.
func (f *Framebuffer) Width() int { return f.w }

// Height returns the number of pixel rows.
func (f *Framebuffer) Height() int { return f.h }

// At returns the pixel color at (x, y).
func (f *Framebuffer) At(x, y int) Color {
	i := (y*f.w + x) * 4
	return Color{f.pix[i], f.pix[i+1], f.pix[i+2]}
}

// Alpha returns the alpha channel at (x, y). Zero means the cell has
// never been written.
func (f *Framebuffer) Alpha(x, y int) uint8 {
	return f.pix[(y*f.w+x)*4+3]
}

// Push scrolls the history one column left, discarding column 0, and
// writes the frame colorized into the rightmost column.
//
// Rows map onto frame indices by nearest-floor sampling: row y reads
// frame[y*len(frame)/h]. When the buffer is taller than the frame,
// neighboring rows repeat the same bin; an index outside the frame reads
// as zero.
func (f *Framebuffer) Push(frame []byte) {
	for y := 0; y < f.h; y++ {
		row := f.pix[y*f.w*4 : (y+1)*f.w*4]
		copy(row[:len(row)-4], row[4:])
	}

	for y := 0; y < f.h; y++ {
		var sample byte
		if len(frame) > 0 {
			if idx := y * len(frame) / f.h; idx >= 0 && idx < len(frame) {
				sample = frame[idx]
			}
		}
		c := MapToColor(float64(sample) / 255)
		i := (y*f.w + f.w - 1) * 4
		f.pix[i] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
		f.pix[i+3] = 0xFF
	}
}
