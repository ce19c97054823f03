package ptr

// To returns a pointer to v. Useful for optional struct fields in tests and DTOs.
func To[T any](v T) *T {
	return &v
}

// Deref returns the pointed-to value, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
