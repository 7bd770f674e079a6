package normalize

import "strings"

// TokenSet is an insertion-ordered set of lowercase tokens. The zero value
// is an empty set ready to use.
type TokenSet struct {
	order []string
	index map[string]struct{}
}

// Len returns the number of distinct tokens.
func (s TokenSet) Len() int {
	return len(s.order)
}

// Empty reports whether the set has no tokens.
func (s TokenSet) Empty() bool {
	return len(s.order) == 0
}

// Has reports whether token (compared after folding) is in the set.
func (s TokenSet) Has(token string) bool {
	if s.index == nil {
		return false
	}
	_, ok := s.index[fold(token)]
	return ok
}

// Any reports whether at least one token of other is in s.
func (s TokenSet) Any(other TokenSet) bool {
	for _, token := range other.order {
		if _, ok := s.index[token]; ok {
			return true
		}
	}
	return false
}

// All reports whether every token of other is in s. An empty other is
// vacuously contained.
func (s TokenSet) All(other TokenSet) bool {
	for _, token := range other.order {
		if _, ok := s.index[token]; !ok {
			return false
		}
	}
	return true
}

// Values returns a copy of the tokens in first-seen order.
func (s TokenSet) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// String joins the tokens with ", ".
func (s TokenSet) String() string {
	return strings.Join(s.order, ", ")
}

func (s *TokenSet) addCSV(raw string) {
	for _, part := range strings.Split(raw, ",") {
		s.add(fold(part))
	}
}

func (s *TokenSet) add(token string) {
	if token == "" {
		return
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[token]; ok {
		return
	}
	s.index[token] = struct{}{}
	s.order = append(s.order, token)
}
