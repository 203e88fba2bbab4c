package chatbot

import (
	"strings"

	"reservas/models"
)

// Match ranks, best first. Lower is better.
const (
	rankExact = iota
	rankPrefix
	rankSubstring
	rankToken
	rankNone
)

// ResolveSpace finds the space a free-text query refers to. Two passes:
// whole-query comparison (raw and with all non-alphanumerics stripped, so
// "a002", "A-002" and "A 002" are equivalent), then a token fallback over
// words of length >= 3. Candidates are ranked exact > prefix > substring >
// token; ties break on shortest then lexicographically smallest name, so the
// result never depends on iteration order.
func ResolveSpace(text string, spaces []models.Space) *models.Space {
	q := strings.ToLower(strings.TrimSpace(text))
	qNorm := normalizeAlnum(q)
	if qNorm == "" {
		return nil
	}

	tokens := make([]string, 0, 4)
	for _, tok := range strings.Fields(q) {
		if len(tok) >= 3 {
			tokens = append(tokens, tok)
		}
	}

	best := rankNone
	var bestSpace *models.Space
	for i := range spaces {
		sp := &spaces[i]
		r := rankSpace(q, qNorm, tokens, sp)
		if r < best || (r == best && bestSpace != nil && betterName(sp.Name, bestSpace.Name)) {
			best = r
			bestSpace = sp
		}
	}
	if best == rankNone {
		return nil
	}
	return bestSpace
}

func rankSpace(q, qNorm string, tokens []string, sp *models.Space) int {
	name := strings.ToLower(sp.Name)
	nameNorm := normalizeAlnum(name)
	if nameNorm == "" {
		return rankNone
	}
	switch {
	case qNorm == nameNorm:
		return rankExact
	case strings.HasPrefix(qNorm, nameNorm) || strings.HasPrefix(nameNorm, qNorm):
		return rankPrefix
	case strings.Contains(qNorm, nameNorm) || strings.Contains(nameNorm, qNorm):
		return rankSubstring
	}
	for _, tok := range tokens {
		if strings.Contains(name, tok) {
			return rankToken
		}
		if tokNorm := normalizeAlnum(tok); tokNorm != "" && strings.Contains(nameNorm, tokNorm) {
			return rankToken
		}
	}
	return rankNone
}

func betterName(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// normalizeAlnum lowercases and strips everything outside [a-z0-9].
func normalizeAlnum(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
