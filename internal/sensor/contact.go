package sensor

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Contact is a tracked near-field source, shown as a radar blip.
type Contact struct {
	ID       string // advertisement address
	Name     string
	RSSI     float64
	LastSeen time.Time
	Bearing  float64 // radians, 0=north clockwise; hash-derived, stable per ID
	Distance float64 // estimated meters from the path loss model
}

// DisplayName returns the contact name or "[unnamed]" if empty.
func (c *Contact) DisplayName() string {
	if c.Name == "" {
		return "[unnamed]"
	}
	return c.Name
}

// Callsign returns a short radar label: the name when known, otherwise
// a stable hash tag derived from the ID.
func (c *Contact) Callsign() string {
	if c.Name != "" {
		return c.Name
	}
	h := sha256.Sum256([]byte(c.ID))
	return fmt.Sprintf("#%02X%X", h[0], h[1]&0x0F)
}

// IDToBearing derives a consistent bearing from a contact ID using a
// hash, so a contact keeps its position on the radar across updates.
// Returns radians in [0, 2π), 0=north, increasing clockwise.
func IDToBearing(id string) float64 {
	h := sha256.Sum256([]byte(id))
	val := binary.BigEndian.Uint32(h[:4])
	return float64(val) / float64(math.MaxUint32) * 2 * math.Pi
}

// RSSIToDistance estimates distance from RSSI using the log-distance
// path loss model: d = 10^((measuredPower - rssi) / (10 * n)).
func RSSIToDistance(rssi, measuredPower, pathLossExp float64) float64 {
	if rssi >= 0 {
		return 0.1
	}
	d := math.Pow(10, (measuredPower-rssi)/(10*pathLossExp))
	if d < 0.1 {
		return 0.1
	}
	return d
}
