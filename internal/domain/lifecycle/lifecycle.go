// Package lifecycle defines shared timeouts for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single lifecycle hook may run.
const DefaultTimeout = 10 * time.Second
