package hass

import (
	"errors"
	"fmt"
)

// ErrUpstream is the sentinel for any Home Assistant call failure. Callers
// can use errors.Is(err, hass.ErrUpstream) without caring whether the cause
// was transport, HTTP status or body decoding.
var ErrUpstream = errors.New("hass: upstream call failed")

// UpstreamError carries the failing operation and the underlying cause of a
// Home Assistant API call.
type UpstreamError struct {
	Op  string // e.g. "GET states", "POST services/light/turn_on"
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("hass: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is reports ErrUpstream identity so sentinel checks match.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
