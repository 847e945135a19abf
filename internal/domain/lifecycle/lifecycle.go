// Package lifecycle holds shared start/stop conventions for long-running
// components managed by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of servers and
// store clients.
const DefaultTimeout = 10 * time.Second
