package service

import "errors"

// ErrUpstream marks a failure of an external collaborator (the durable
// store or the ML service). It propagates to the boundary layer as a
// distinct failure kind; the engine performs no retries and never
// substitutes fabricated data for a failed fetch.
var ErrUpstream = errors.New("upstream service failure")
