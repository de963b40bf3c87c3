package config

import "time"

const (
	// Radar display
	AspectRatio   = 0.5  // Terminal char aspect correction (chars are ~2:1 tall)
	RingCount     = 3    // Number of concentric range rings
	SweepStepDeg  = 4.0  // Sweep advance per display tick (degrees)
	SweepTrailDeg = 60.0 // Sweep trail angle in degrees
	TargetFPS     = 30   // Target frames per second

	// Spectral analysis
	SampleRate    = 44100                 // Capture rate in Hz
	FFTSize       = 2048                  // Samples per analysis window (FFTSize/2 bins)
	FrameInterval = 50 * time.Millisecond // Spectral frame emission throttle

	// Contact management
	ContactTimeout = 20 * time.Second // Remove contacts not seen for this long
	EvictInterval  = 5 * time.Second  // How often to run eviction
	SmoothingAlpha = 0.3              // EMA smoothing factor (30% new, 70% old)

	// Magnetometer
	MagPollInterval = 200 * time.Millisecond // IIO sysfs poll period
	FieldHistory    = 120                    // Field magnitude readings kept for the sparkline

	// Proximity distance estimation
	MeasuredPower = -59.0 // RSSI at 1 meter (dBm)
	PathLossExp   = 2.5   // Path loss exponent (N)

	// Alert tone
	ToneFreq     = 880.0 // Hz
	ToneDuration = 120 * time.Millisecond
	ToneCooldown = 2 * time.Second

	// App
	AppName    = "ANOMALY-RADAR"
	AppVersion = "1.0"
)

// Defaults for the tunable thresholds. These are demo constants with no
// calibration basis, so they are exposed as flags rather than baked in.
const (
	DefaultNearRSSI = -45.0 // dBm at or above which an advertisement counts as near-field
	DefaultMagAlert = 90.0  // µT field magnitude that triggers an alert
	DefaultMaxRange = 30.0  // Maximum radar range in meters
)
