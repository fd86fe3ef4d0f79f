package validation

import (
	"strings"
	"unicode"
)

// StatementClass is the allow/deny decision for a statement.
type StatementClass int

const (
	Rejected StatementClass = iota
	Readonly
)

func (c StatementClass) String() string {
	if c == Readonly {
		return "readonly"
	}
	return "rejected"
}

// AllowedKeywords is the fixed set of leading keywords treated as read-only.
var AllowedKeywords = []string{"SELECT", "SHOW", "DESCRIBE", "EXPLAIN"}

// Classify decides the class of raw from its leading keyword only.
//
// The body of the statement is never inspected: trailing clauses, subqueries
// and chained statements pass if the first keyword is allowed. Empty input
// is Rejected; callers are expected to report it as a validation error first.
func Classify(raw string) StatementClass {
	keyword := LeadingKeyword(raw)
	if keyword == "" {
		return Rejected
	}
	for _, allowed := range AllowedKeywords {
		if strings.EqualFold(keyword, allowed) {
			return Readonly
		}
	}
	return Rejected
}

// LeadingKeyword returns the first token of the trimmed statement.
func LeadingKeyword(raw string) string {
	trimmed := strings.TrimSpace(raw)
	end := strings.IndexFunc(trimmed, func(r rune) bool {
		return unicode.IsSpace(r) || r == '(' || r == ';'
	})
	if end < 0 {
		return trimmed
	}
	return trimmed[:end]
}
