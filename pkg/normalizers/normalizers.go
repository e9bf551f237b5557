// Package normalizers provides field name normalization for matching
package normalizers

import (
	"strings"
	"unicode"
)

// Normalizer is a function that normalizes a string value
type Normalizer func(string) string

// registry holds all registered normalizers
var registry = make(map[string]Normalizer)

func init() {
	// Register built-in normalizers
	Register("lowercase", Lowercase)
	Register("trim", Trim)
	Register("remove_whitespace", RemoveWhitespace)
	Register("alphanumeric", Alphanumeric)
	Register("field_key", FieldKey)
	Register("field_name", FieldName)
}

// Register adds a normalizer to the registry
func Register(name string, fn Normalizer) {
	registry[name] = fn
}

// Get retrieves a normalizer by name
func Get(name string) (Normalizer, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Apply applies a named normalizer to a value
func Apply(value, normalizer string) string {
	fn, ok := registry[normalizer]
	if !ok {
		return value
	}
	return fn(value)
}

// ApplyChain applies multiple normalizers in sequence
func ApplyChain(value string, normalizers ...string) string {
	result := value
	for _, name := range normalizers {
		result = Apply(result, name)
	}
	return result
}

// Role affixes that extractors and form designers prepend/append to
// field names without changing their meaning
var (
	rolePrefixes = []string{"form_", "field_", "txt_", "chk_", "opt_", "input_"}
	roleSuffixes = []string{"_field", "_input", "_box", "_text", "_value"}
)

// Built-in normalizers

// Lowercase converts string to lowercase
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// Trim removes leading and trailing whitespace
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// RemoveWhitespace removes all whitespace characters
func RemoveWhitespace(s string) string {
	var result strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// Alphanumeric keeps only alphanumeric characters
func Alphanumeric(s string) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// stripAffixes removes role prefixes and suffixes from an
// already-lowercased field name
func stripAffixes(s string) string {
	for _, prefix := range rolePrefixes {
		if strings.HasPrefix(s, prefix) {
			s = s[len(prefix):]
		}
	}
	for _, suffix := range roleSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = s[:len(s)-len(suffix)]
		}
	}
	return s
}

// FieldKey normalizes a field name into its exact-match form:
// lowercase, role affixes stripped, all non-alphanumerics dropped.
// Idempotent.
func FieldKey(s string) string {
	s = stripAffixes(strings.ToLower(s))
	return Alphanumeric(s)
}

// FieldName normalizes a field name into its word form for fuzzy and
// semantic comparison: lowercase, role affixes stripped, runs of
// non-alphanumerics collapsed to single spaces. Idempotent.
func FieldName(s string) string {
	s = stripAffixes(strings.ToLower(s))

	var result strings.Builder
	prevSpace := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
			prevSpace = false
		} else if !prevSpace {
			result.WriteRune(' ')
			prevSpace = true
		}
	}

	return strings.TrimSpace(result.String())
}
