// Package lifecycle holds shared constants for process start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup probes.
const DefaultTimeout = 10 * time.Second
