package errorutils

// Must returns value when err is nil and panics otherwise.
// Only for failures that mean the program itself is broken, like a bad embedded file.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
