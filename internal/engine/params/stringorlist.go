package params

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

type form uint8

const (
	formNone form = iota
	formString
	formList
)

// StringOrList is a list-valued argument supplied either as one comma-delimited
// string or as a list of strings. The zero value means the argument is absent.
type StringOrList struct {
	form  form
	raw   string
	items []string
}

// String wraps a delimited string such as "snippet,status".
func String(s string) StringOrList {
	return StringOrList{form: formString, raw: s}
}

// List wraps a native list. An empty list is present but empty.
func List(items ...string) StringOrList {
	return StringOrList{form: formList, items: slices.Clone(items)}
}

// IsZero reports whether the argument was not supplied at all.
func (v StringOrList) IsZero() bool { return v.form == formNone }

// Tokens splits every element on commas and trims whitespace.
// Empty tokens are dropped; order and duplicates are kept.
func (v StringOrList) Tokens() []string {
	var chunks []string
	switch v.form {
	case formString:
		chunks = []string{v.raw}
	case formList:
		chunks = v.items
	}
	var out []string
	for _, c := range chunks {
		for _, tok := range strings.Split(c, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				out = append(out, tok)
			}
		}
	}
	return out
}

func (v StringOrList) MarshalJSON() ([]byte, error) {
	switch v.form {
	case formString:
		return json.Marshal(v.raw)
	case formList:
		if v.items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.items)
	}
	return []byte("null"), nil
}

func (v *StringOrList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = StringOrList{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = String(s)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: expected a string or a list of strings", ErrValidation)
	}
	*v = List(items...)
	return nil
}
