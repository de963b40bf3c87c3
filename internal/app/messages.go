package app

import "time"

// TickMsg drives one display frame of the rendering loop.
type TickMsg time.Time

// EvictMsg triggers contact eviction.
type EvictMsg time.Time
