package params

import (
	"slices"
	"strings"
)

// TagSet is the ordered set of tags a field accepts. Tag sets are plain data so
// new remote tags can be added without touching the validators.
type TagSet []string

// NewTagSet returns a tag set in declaration order.
func NewTagSet(tags ...string) TagSet { return TagSet(slices.Clone(tags)) }

// Contains reports whether tag is a member of the set.
func (s TagSet) Contains(tag string) bool { return slices.Contains(s, tag) }

func (s TagSet) String() string { return strings.Join(s, ", ") }

// NormalizeIDList turns raw id input into distinct, trimmed, non-empty ids.
func NormalizeIDList(raw StringOrList) ([]string, error) {
	ids := distinct(raw.Tokens())
	if len(ids) == 0 {
		return nil, ErrEmptyIDList
	}
	return ids, nil
}

// NormalizePartList turns raw part input into distinct tags drawn from valid.
// Every unknown token is reported, not only the first.
func NormalizePartList(raw StringOrList, valid TagSet) ([]string, error) {
	parts := distinct(raw.Tokens())
	if len(parts) == 0 {
		return nil, ErrMissingPart
	}
	var bad []string
	for _, p := range parts {
		if !valid.Contains(p) {
			bad = append(bad, p)
		}
	}
	if len(bad) > 0 {
		return nil, &InvalidTagError{Field: "part", Tokens: bad, Valid: valid}
	}
	return parts, nil
}

// NormalizeHandle prefixes a channel handle with "@" unless it already has one.
func NormalizeHandle(raw string) string {
	if strings.HasPrefix(raw, "@") {
		return raw
	}
	return "@" + raw
}

// ValidateTag checks a single enum value against its tag set.
func ValidateTag(field, value string, valid TagSet) error {
	if !valid.Contains(value) {
		return &InvalidTagError{Field: field, Tokens: []string{value}, Valid: valid}
	}
	return nil
}

// ValidateRange checks lo <= value <= hi.
func ValidateRange(field string, value, lo, hi int64) error {
	if value < lo || value > hi {
		return &RangeError{Field: field, Value: value, Min: lo, Max: hi}
	}
	return nil
}

func distinct(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
