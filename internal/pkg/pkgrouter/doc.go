// Package pkgrouter wraps HTTP routing and common middleware used by the API.
//
// It provides a small router abstraction over httprouter plus shared concerns
// like JSON encoding, error mapping, logging, recovery, and correlation ID
// propagation. Handlers whose payload implements RawResponse bypass the
// {message, data, meta} envelope, which lets the relay and the invocation
// endpoint answer with exactly the JSON their callers expect.
package pkgrouter
