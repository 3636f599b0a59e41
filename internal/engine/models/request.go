package models

import (
	"errors"
	"slices"
	"strings"

	"github.com/anatolykoptev/go_youtube/internal/engine/params"
)

// Request is the validated parameter set of one list call. It is built only by
// an Input's Request method and never changes afterwards.
type Request struct {
	kind       Kind
	parts      []string
	filter     string
	fields     []params.Field
	noPageSize bool
}

func (r *Request) Kind() Kind { return r.kind }

// Parts returns a copy of the requested parts in order.
func (r *Request) Parts() []string { return slices.Clone(r.parts) }

// Filter names the one filter the request selects by.
func (r *Request) Filter() string { return r.filter }

// AcceptsPageSize reports whether a maxResults hint may be sent with the request.
// It is false for video requests filtered by id.
func (r *Request) AcceptsPageSize() bool { return !r.noPageSize }

// ForAPICall projects the request into its wire form.
func (r *Request) ForAPICall() params.Params { return r.project(params.ModeAPI) }

// ForSchema projects the request into its introspection form.
func (r *Request) ForSchema() params.Params { return r.project(params.ModeSchema) }

func (r *Request) project(mode params.Mode) params.Params {
	fields := make([]params.Field, 0, len(r.fields)+1)
	fields = append(fields, params.Field{Name: "part", Value: r.parts})
	fields = append(fields, r.fields...)
	return params.Project(mode, fields...)
}

// builder collects the present fields of an Input and validates them against
// the kind's declarations.
type builder struct {
	spec   *kindSpec
	part   params.StringOrList
	fields []params.Field
	seen   map[string]bool
	errs   []error
}

func newBuilder(spec *kindSpec, part params.StringOrList) *builder {
	return &builder{spec: spec, part: part, seen: make(map[string]bool)}
}

func (b *builder) set(name string, v any) {
	b.seen[name] = true
	b.fields = append(b.fields, params.Field{Name: name, Value: v})
}

// fail records err for a field the caller did supply, so that the field still
// counts towards the filter total.
func (b *builder) fail(name string, err error) {
	b.seen[name] = true
	b.errs = append(b.errs, err)
}

func (b *builder) str(name string, v *string) {
	if v == nil {
		return
	}
	if b.spec.isFilter(name) && strings.TrimSpace(*v) == "" {
		b.fail(name, &params.EmptyValueError{Field: name})
		return
	}
	b.set(name, *v)
}

func (b *builder) handle(name string, v *string) {
	if v == nil {
		return
	}
	h := strings.TrimSpace(*v)
	if h == "" || h == "@" {
		b.fail(name, &params.EmptyValueError{Field: name})
		return
	}
	b.set(name, params.NormalizeHandle(h))
}

func (b *builder) boolean(name string, v *bool) {
	if v != nil {
		b.set(name, *v)
	}
}

func (b *builder) integer(name string, v *int64) {
	if v == nil {
		return
	}
	if f, ok := b.spec.field(name); ok && f.bounded {
		if err := params.ValidateRange(name, *v, f.min, f.max); err != nil {
			b.fail(name, err)
			return
		}
	}
	b.set(name, *v)
}

func (b *builder) ids(name string, v params.StringOrList) {
	if v.IsZero() {
		return
	}
	ids, err := params.NormalizeIDList(v)
	if err != nil {
		b.fail(name, err)
		return
	}
	b.set(name, ids)
}

func (b *builder) enum(name string, v params.Enum) {
	f, _ := b.spec.field(name)
	if err := params.ValidateTag(name, v.Tag(), f.tags); err != nil {
		b.fail(name, err)
		return
	}
	b.set(name, v)
}

func (b *builder) page(p PageRequest) {
	if p.PageToken != nil && *p.PageToken != "" {
		b.set("pageToken", *p.PageToken)
	}
	if p.MaxResults != nil {
		if err := params.ValidateRange("maxResults", *p.MaxResults, b.spec.pageMin, b.spec.pageMax); err != nil {
			b.fail("maxResults", err)
			return
		}
		b.set("maxResults", *p.MaxResults)
	}
}

func (b *builder) build() (*Request, error) {
	var errs []error

	parts, err := params.NormalizePartList(b.part, b.spec.parts)
	if err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, b.errs...)

	cands := make([]params.Candidate, len(b.spec.filters))
	filter := ""
	for i, f := range b.spec.filters {
		cands[i] = params.Candidate{Name: f.name, Set: b.seen[f.name]}
		if b.seen[f.name] {
			filter = f.name
		}
	}
	if err := params.ValidateExactlyOne(cands...); err != nil {
		errs = append(errs, err)
	}

	for _, c := range b.spec.conflicts {
		if b.seen[c.field] && b.seen[c.with] {
			errs = append(errs, &params.ConflictError{Field: c.field, With: c.with, Reason: c.reason})
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &Request{
		kind:       b.spec.kind,
		parts:      parts,
		filter:     filter,
		fields:     b.fields,
		noPageSize: b.spec.sizelessWith != "" && b.seen[b.spec.sizelessWith],
	}, nil
}
