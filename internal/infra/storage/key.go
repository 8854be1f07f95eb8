package storage

import (
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const keyPrefix = "reports"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ObjectKey builds a collision free key that keeps a readable file name.
func ObjectKey(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.Trim(unsafeChars.ReplaceAllString(base, "_"), "_.")
	if base == "" {
		base = "image"
	}
	return keyPrefix + "/" + uuid.NewString() + "_" + base
}

func PublicURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + key
}
