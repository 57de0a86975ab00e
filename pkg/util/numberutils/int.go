package numberutils

import "strconv"

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}

// ClampInt limits num to the inclusive range [lower, upper].
func ClampInt(num, lower, upper int) int {
	return max(lower, min(num, upper))
}
