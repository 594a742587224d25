package ptr

// Ptr returns a pointer to v. Convenient for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}
