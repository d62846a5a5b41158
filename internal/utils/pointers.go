package utils

func StringPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Truncate shortens s to at most limit runes.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}

func ErrorString(err error, limit int) string {
	if err == nil {
		return ""
	}
	return Truncate(err.Error(), limit)
}
