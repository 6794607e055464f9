package convert

// Deref returns the value p points to, or the zero value for nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// DerefOr returns the value p points to, or def for nil.
func DerefOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// ToStringMap flattens a provider tag map. Nil values become empty strings.
// Returns nil for nil input.
func ToStringMap(data map[string]*string) map[string]string {
	if data == nil {
		return nil
	}
	result := make(map[string]string, len(data))
	for k, v := range data {
		result[k] = Deref(v)
	}
	return result
}

// ToSliceOfString drops nil elements and keeps order.
func ToSliceOfString(data []*string) []string {
	result := make([]string, 0, len(data))
	for _, v := range data {
		if v == nil {
			continue
		}
		result = append(result, *v)
	}
	return result
}

// ToEnumString converts a pointer to any string-backed enum, "" for nil.
func ToEnumString[T ~string](p *T) string {
	if p == nil {
		return ""
	}
	return string(*p)
}
