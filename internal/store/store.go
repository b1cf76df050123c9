// Package store provides concurrent in-memory stores for network
// configuration profiles. State is memory-resident and does not survive a
// process restart.
package store

import "errors"

// ErrNotFound is returned when an operation references a profile id that does
// not exist in the targeted store.
var ErrNotFound = errors.New("profile not found")
