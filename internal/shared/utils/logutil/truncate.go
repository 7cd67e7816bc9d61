package logutil

// TruncateForLog truncates s to maxLen runes for logging and appends "..."
// when anything was cut. Form input is free text, so the cut never splits a
// multi-byte character.
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	if len(s) <= maxLen {
		return s
	}

	count := 0
	for i := range s {
		if count == maxLen {
			return s[:i] + "..."
		}
		count++
	}
	return s
}
