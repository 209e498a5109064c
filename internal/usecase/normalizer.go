package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex pattern for performance
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize lowercases a string and treats every character outside [a-z0-9]
// as a separator, collapsing separator runs into single spaces and trimming
// the ends. ASCII-centric on purpose: the input is OCR output and catalog
// names, not localized prose, so no locale-sensitive casing is involved.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	cleaned := strings.ToLower(s)
	cleaned = nonAlphanumericRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Tokenize splits a string into normalized lowercase tokens.
func Tokenize(s string) []string {
	return strings.Fields(Normalize(s))
}

// tokenSet builds a membership set for exact token matching
func tokenSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}
