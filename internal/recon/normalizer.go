package recon

import "strings"

// NormalizeKey canonicalizes a description or prefix for lookups:
// surrounding whitespace trimmed, inner whitespace runs collapsed to one space, upper-cased.
func NormalizeKey(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
