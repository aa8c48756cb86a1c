// Package slogx holds the slog attribute helpers used across the module.
package slogx

import (
	"fmt"
	"log/slog"
)

// Error returns an attribute with key "error" holding the error's message.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Stringer returns an attribute holding the string form of any
// fmt.Stringer, such as a request id or a provider kind.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}
