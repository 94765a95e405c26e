// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as server shutdown and
// database pings.
const DefaultTimeout = 30 * time.Second
