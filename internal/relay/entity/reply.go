package entity

import "errors"

// ErrDownstreamUnparseable marks a downstream reply whose body is not JSON.
var ErrDownstreamUnparseable = errors.New("downstream response is not valid JSON")

// Reply is what the downstream function answered.
type Reply struct {
	Status int
	Body   []byte
}

// RawFallback replaces a downstream body that could not be relayed as JSON.
type RawFallback struct {
	Raw    string `json:"raw"`
	Status int    `json:"status"`
}
