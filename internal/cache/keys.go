package cache

import "strings"

const (
	GlobalKeyPrefix = "quizroom"
)

// GenerateCacheKey builds prefix:service:object:identifier, with any
// paramsKey joined by "_" and appended as a final segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// ScreenKey is where the navigation state of a user is stored.
func ScreenKey(userID string) string {
	return GenerateCacheKey("navigation", "screen", userID)
}
