package option

//Lookup returns the first option of type T
func Lookup[T any](options []Option) (T, bool) {
	for _, candidate := range options {
		if value, ok := candidate.(T); ok {
			return value, true
		}
	}
	var zero T
	return zero, false
}
