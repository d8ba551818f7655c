// Package memzero wipes sensitive byte slices.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros. The write goes through
// subtle.ConstantTimeCopy instead of a plain range loop so it cannot
// be elided as a dead store when b is about to go out of scope.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
