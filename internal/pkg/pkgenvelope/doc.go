// Package pkgenvelope holds the JSON contract exchanged between the upload
// relay and the validation function.
//
// The payload bytes travel as a JSON array of integers (0..255), one element
// per byte, so any JSON-capable runtime can rebuild them without base64.
package pkgenvelope
