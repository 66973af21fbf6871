package helpers

import "strings"

// TokenValidator holds the set of accepted API tokens. Built once at
// startup and never mutated after, so concurrent reads need no locking.
type TokenValidator struct {
	tokens map[string]struct{}
}

// NewTokenValidator combines a single token and a token list into one set.
// Entries are trimmed, blanks dropped, and duplicates collapse.
func NewTokenValidator(token string, tokens []string) *TokenValidator {
	set := make(map[string]struct{}, len(tokens)+1)
	for _, t := range append([]string{token}, tokens...) {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return &TokenValidator{tokens: set}
}

// IsValid reports whether the trimmed token exactly matches a configured
// token. Matching is ordinal and case-sensitive.
func (v *TokenValidator) IsValid(token string) bool {
	_, ok := v.tokens[strings.TrimSpace(token)]
	return ok
}

// HasTokens reports whether any tokens are configured; an empty set means
// every request will be rejected.
func (v *TokenValidator) HasTokens() bool {
	return len(v.tokens) > 0
}
