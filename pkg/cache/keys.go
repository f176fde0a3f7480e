package cache

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// KeyPrefix scopes every key this service writes.
const KeyPrefix = "hypergo:"

// Key namespaces. Invalidation works on whole namespaces or exact keys within them.
const (
	NamespaceSearch                  = "search"
	NamespaceFavoriteList            = "favorites:list"
	NamespaceFavoriteCheck           = "favorites:check"
	NamespaceRecommendationsReceived = "recommendations:received"
	NamespaceRecommendationsSent     = "recommendations:sent"
)

var namespaces = []string{
	NamespaceFavoriteCheck,
	NamespaceFavoriteList,
	NamespaceRecommendationsReceived,
	NamespaceRecommendationsSent,
	NamespaceSearch,
}

// NamespacePrefix is the key prefix shared by every key in ns.
func NamespacePrefix(ns string) string {
	return KeyPrefix + ns + ":"
}

// SearchResultKey fingerprints a canonical filter encoding.
// xxhash uses a fixed seed, so keys are stable across restarts and instances.
func SearchResultKey(canonical string) string {
	return fmt.Sprintf("%s%016x-%d", NamespacePrefix(NamespaceSearch), xxhash.Sum64String(canonical), len(canonical))
}

func FavoriteListKey(userID string) string {
	return NamespacePrefix(NamespaceFavoriteList) + userID
}

func FavoriteCheckKey(userID, propertyID string) string {
	return NamespacePrefix(NamespaceFavoriteCheck) + userID + ":" + propertyID
}

func RecommendationsReceivedKey(userID string) string {
	return NamespacePrefix(NamespaceRecommendationsReceived) + userID
}

func RecommendationsSentKey(userID string) string {
	return NamespacePrefix(NamespaceRecommendationsSent) + userID
}

// Namespace returns the namespace a key belongs to, or "other".
func Namespace(key string) string {
	rest, ok := strings.CutPrefix(key, KeyPrefix)
	if !ok {
		return "other"
	}
	for _, ns := range namespaces {
		if strings.HasPrefix(rest, ns+":") {
			return ns
		}
	}
	return "other"
}
