// Package slogx carries small helpers for building log/slog attributes.
package slogx

import (
	"fmt"
	"log/slog"
)

// Error returns an attribute with key "error" holding the error's message.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Stringer returns an attribute holding the string form of value.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

// Step returns an attribute naming the workflow step being executed.
func Step(name string) slog.Attr {
	return slog.String("step", name)
}
