package domain

// CoalesceFloatPtr returns the first non-nil *float64 from ptrs, or nil.
func CoalesceFloatPtr(ptrs ...*float64) *float64 {
	for _, p := range ptrs {
		if p != nil {
			return p
		}
	}
	return nil
}

// Float64FromPtrWithDefault returns the first non-nil *float64 value, or the fallback.
func Float64FromPtrWithDefault(fallback float64, ptrs ...*float64) float64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// FloatPtr returns a pointer to v. Convenience for literals in fixtures and
// call sites.
func FloatPtr(v float64) *float64 {
	return &v
}
