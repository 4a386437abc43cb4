package keys

import (
	"strings"
)

// CustomKey joins key components with the specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey joins cache key components with ":"
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}
