package dsp

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// dynamicRange is how far below full scale still registers: -80 dBFS
// maps to bin value 0, full scale to 255.
const dynamicRange = 80.0

// Analyzer turns fixed-size sample windows into byte magnitude frames.
// The Hamming window, its sum, and the FFT plan are computed once and
// reused across calls.
type Analyzer struct {
	size    int
	window  []float64
	winSum  float64
	fft     *fourier.FFT
	scratch []float64
}

// NewAnalyzer creates an analyzer for windows of the given even size.
// Each frame carries size/2 magnitude bins, DC excluded.
func NewAnalyzer(size int) *Analyzer {
	win := Hamming(size)
	sum := 0.0
	for _, v := range win {
		sum += v
	}
	return &Analyzer{
		size:    size,
		window:  win,
		winSum:  sum,
		fft:     fourier.NewFFT(size),
		scratch: make([]float64, size),
	}
}

// Bins returns the number of magnitude bins per frame.
func (a *Analyzer) Bins() int { return a.size / 2 }

// Frame computes the byte magnitude spectrum of one window of PCM
// samples normalized to [-1, 1]. Low frequencies come first. A short
// window is zero-padded; anything longer is truncated.
func (a *Analyzer) Frame(samples []float64) []byte {
	for i := range a.scratch {
		if i < len(samples) {
			a.scratch[i] = samples[i] * a.window[i]
		} else {
			a.scratch[i] = 0
		}
	}

	coeffs := a.fft.Coefficients(nil, a.scratch)

	out := make([]byte, a.Bins())
	for i := range out {
		// Single-sided magnitude, window-sum normalized. coeffs[0] is DC.
		mag := 2 * cmplx.Abs(coeffs[i+1]) / a.winSum
		out[i] = magToByte(mag)
	}
	return out
}

func magToByte(mag float64) byte {
	if mag <= 0 {
		return 0
	}
	db := 20 * math.Log10(mag)
	v := (db + dynamicRange) / dynamicRange
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return byte(math.Round(v * 255))
}
