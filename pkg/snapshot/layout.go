package snapshot

import (
	"fmt"
	"path/filepath"
)

const (
	// DefaultRoot is the default snapshot directory.
	DefaultRoot = "/tmp/bookingcom"

	// DefaultKeyPrefix is the default Redis key prefix.
	DefaultKeyPrefix = "bookingcom"

	// ManifestFile is the manifest file name inside a snapshot root.
	ManifestFile = "manifest.yaml"
)

// PageFile returns the file name for the page at the given offset.
func PageFile(offset int) string {
	return fmt.Sprintf("offset_%d.xml", offset)
}

// PagePath returns the full path of an endpoint's page file inside a
// snapshot root.
func PagePath(root, endpoint string, offset int) string {
	return filepath.Join(root, endpoint, PageFile(offset))
}

// PageKey returns the Redis key for an endpoint's page. Keys mirror the
// filesystem layout: <prefix>:<endpoint>:offset_<offset>.
func PageKey(prefix, endpoint string, offset int) string {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return fmt.Sprintf("%s:%s:offset_%d", prefix, endpoint, offset)
}

// ManifestKey returns the Redis key the manifest is stored under.
func ManifestKey(prefix string) string {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return prefix + ":manifest"
}
