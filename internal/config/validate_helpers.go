package config

import "strings"

// HasGlob reports whether a path includes glob characters.
func HasGlob(value string) bool {
	return strings.ContainsAny(value, "*?[]")
}
