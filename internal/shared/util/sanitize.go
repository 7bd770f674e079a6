package util

import (
	"errors"
	"path"
	"strings"
)

var ErrInvalidKey = errors.New("invalid storage key")

// CleanKey normalizes an object storage key to forward slashes without a
// leading slash and rejects traversal segments.
func CleanKey(key string) (string, error) {
	s := strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	for _, seg := range strings.Split(s, "/") {
		if seg == ".." {
			return "", ErrInvalidKey
		}
	}
	s = strings.TrimLeft(path.Clean("/"+s), "/")
	if s == "" || s == "." {
		return "", ErrInvalidKey
	}
	return s, nil
}
