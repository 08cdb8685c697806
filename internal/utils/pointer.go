package utils

// Ptr returns a pointer to a copy of v.
//
//	last := utils.Ptr(result)
func Ptr[T any](v T) *T {
	return &v
}
