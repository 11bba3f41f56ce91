// Package utils provides small helpers shared by the static handler and the
// publisher: MIME type inference, hidden-name detection and key conversion.
package utils
