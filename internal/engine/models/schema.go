package models

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// InputSchema describes the arguments of a listing of kind, with pagination
// fields when paged is set. It is derived from the same field declarations the
// Input types are validated against.
func InputSchema(kind Kind, paged bool) (*jsonschema.Schema, error) {
	spec, ok := specs[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}

	props := map[string]*jsonschema.Schema{
		"part": stringOrList(fmt.Sprintf("Resource parts to include, any of: %s", spec.parts)),
	}
	for _, f := range spec.filters {
		props[f.name] = fieldSchema(f, "Filter, exactly one must be set. ")
	}
	for _, f := range spec.modifiers {
		props[f.name] = fieldSchema(f, "")
	}
	if paged {
		props["pageToken"] = &jsonschema.Schema{Type: "string", Description: "Page token returned by a previous call"}
		props["maxResults"] = &jsonschema.Schema{
			Type:        "integer",
			Description: fmt.Sprintf("Maximum number of results per page (%d-%d)", spec.pageMin, spec.pageMax),
			Minimum:     bound(spec.pageMin),
			Maximum:     bound(spec.pageMax),
		}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   []string{"part"},
	}, nil
}

func fieldSchema(f fieldSpec, prefix string) *jsonschema.Schema {
	doc := prefix + f.doc
	switch f.typ {
	case typeList:
		return stringOrList(doc)
	case typeBool:
		return &jsonschema.Schema{Type: "boolean", Description: doc}
	case typeInt:
		s := &jsonschema.Schema{Type: "integer", Description: doc}
		if f.bounded {
			s.Minimum, s.Maximum = bound(f.min), bound(f.max)
		}
		return s
	case typeEnum:
		enum := make([]any, len(f.tags))
		for i, t := range f.tags {
			enum[i] = t
		}
		return &jsonschema.Schema{Type: "string", Description: doc, Enum: enum}
	default:
		return &jsonschema.Schema{Type: "string", Description: doc}
	}
}

func stringOrList(doc string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: doc,
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
	}
}

func bound(v int64) *float64 {
	f := float64(v)
	return &f
}
