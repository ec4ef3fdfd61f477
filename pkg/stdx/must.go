// Package stdx holds tiny standard-library adjacent helpers.
package stdx

// Must0 panics if err is not nil. Use only where an error indicates a
// programming mistake rather than a runtime condition.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v, panicking if err is not nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
