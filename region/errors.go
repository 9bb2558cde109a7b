package region

import "errors"

// ErrUnknownBridge indicates an in-/out-bridge record names a
// (source, target) pair that does not match any input arc.
var ErrUnknownBridge = errors.New("region: bridge references unknown arc")
