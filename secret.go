package servicebindings

import "regexp"

var validSecretKey = regexp.MustCompile(`^[A-Za-z0-9\-_.]+$`)

// IsValidSecretKey reports whether key is a valid Kubernetes Secret key
// (https://kubernetes.io/docs/concepts/configuration/secret/#overview-of-secrets).
// Store-backed Bindings check this before touching their backing store, so a
// malformed key can never escape the binding root or surface an IO error.
func IsValidSecretKey(key string) bool {
	return validSecretKey.MatchString(key)
}
