package models

import "github.com/anatolykoptev/go_youtube/internal/engine/params"

type fieldType uint8

const (
	typeString fieldType = iota
	typeBool
	typeInt
	typeList
	typeEnum
)

// fieldSpec declares one inbound field. The same declarations drive validation
// and the published input schema.
type fieldSpec struct {
	name    string
	typ     fieldType
	tags    params.TagSet
	bounded bool
	min     int64
	max     int64
	doc     string
}

type conflict struct {
	field, with, reason string
}

// kindSpec is everything a kind declares about its list requests.
type kindSpec struct {
	kind      Kind
	parts     params.TagSet
	filters   []fieldSpec
	modifiers []fieldSpec
	pageMin   int64
	pageMax   int64
	conflicts []conflict
	// page size hints are never sent while this filter is set
	sizelessWith string
}

func (s *kindSpec) field(name string) (fieldSpec, bool) {
	for _, f := range s.filters {
		if f.name == name {
			return f, true
		}
	}
	for _, f := range s.modifiers {
		if f.name == name {
			return f, true
		}
	}
	return fieldSpec{}, false
}

func (s *kindSpec) isFilter(name string) bool {
	for _, f := range s.filters {
		if f.name == name {
			return true
		}
	}
	return false
}

func (s *kindSpec) filterNames() []string {
	names := make([]string, len(s.filters))
	for i, f := range s.filters {
		names[i] = f.name
	}
	return names
}

var specs = map[Kind]*kindSpec{}

func register(s *kindSpec) *kindSpec {
	specs[s.kind] = s
	return s
}

// Filters returns the mutually exclusive filter names of kind.
func Filters(kind Kind) []string {
	if s, ok := specs[kind]; ok {
		return s.filterNames()
	}
	return nil
}
