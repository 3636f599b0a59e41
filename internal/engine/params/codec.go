package params

import (
	"fmt"
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Mode selects how a request is projected.
type Mode uint8

const (
	// ModeAPI is the wire form: lists become one comma-joined string.
	ModeAPI Mode = iota
	// ModeSchema is the introspection form: lists stay lists.
	ModeSchema
)

// Enum is a value drawn from a declared tag set.
type Enum interface {
	Tag() string
}

// Field is one present request parameter in canonical form.
type Field struct {
	Name  string
	Value any
}

// Params is a projected parameter set keyed by the remote's parameter names.
type Params map[string]any

// Encode converts a canonical value into its wire value for mode.
func Encode(v any, mode Mode) any {
	switch x := v.(type) {
	case []string:
		if mode == ModeAPI {
			return strings.Join(x, ",")
		}
		return slices.Clone(x)
	case Enum:
		return x.Tag()
	default:
		return v
	}
}

// Project encodes fields into a fresh Params.
func Project(mode Mode, fields ...Field) Params {
	out := make(Params, len(fields))
	for _, f := range fields {
		out[f.Name] = Encode(f.Value, mode)
	}
	return out
}

// Clone returns a shallow copy with list values copied.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		if l, ok := v.([]string); ok {
			v = slices.Clone(l)
		}
		out[k] = v
	}
	return out
}

// Keys returns the parameter names in sorted order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values renders p as a URL query. Lists are comma-joined regardless of how
// they were projected.
func (p Params) Values() url.Values {
	q := make(url.Values, len(p))
	for k, v := range p {
		switch x := v.(type) {
		case string:
			q.Set(k, x)
		case bool:
			q.Set(k, strconv.FormatBool(x))
		case int64:
			q.Set(k, strconv.FormatInt(x, 10))
		case int:
			q.Set(k, strconv.Itoa(x))
		case []string:
			q.Set(k, strings.Join(x, ","))
		case Enum:
			q.Set(k, x.Tag())
		default:
			q.Set(k, fmt.Sprint(x))
		}
	}
	return q
}
