package models

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// maxListIndex bounds the list index a field path may address, so a single
// edit cannot allocate an arbitrarily long list of seed items.
const maxListIndex = 99

var (
	// ErrInvalidFieldPath is returned for paths that do not match the
	// field / list[i].field / list[i].list[j] grammar.
	ErrInvalidFieldPath = errors.New("invalid field path")

	// ErrUnknownField is returned when a path names a field that the
	// section's content variant does not have.
	ErrUnknownField = errors.New("unknown content field")
)

var fieldPathRe = regexp.MustCompile(`^([A-Za-z]+)(?:\[(\d+)\](?:\.([A-Za-z]+)(?:\[(\d+)\])?)?)?$`)

// FieldPath addresses one editable value inside a section's content:
//
//	title                 -> {Field: "title"}
//	items[1].title        -> {Field: "items", Index: 1, SubField: "title"}
//	plans[0].features[2]  -> {Field: "plans", Index: 0, SubField: "features", SubIndex: 2}
type FieldPath struct {
	Field       string
	Index       int
	HasIndex    bool
	SubField    string
	SubIndex    int
	HasSubIndex bool
}

// ParseFieldPath parses s into a [FieldPath].
func ParseFieldPath(s string) (FieldPath, error) {
	m := fieldPathRe.FindStringSubmatch(s)
	if m == nil {
		return FieldPath{}, fmt.Errorf("%w: %q", ErrInvalidFieldPath, s)
	}

	p := FieldPath{Field: m[1]}
	if m[2] != "" {
		idx, err := parseListIndex(m[2])
		if err != nil {
			return FieldPath{}, fmt.Errorf("%w: %q: %w", ErrInvalidFieldPath, s, err)
		}
		p.Index, p.HasIndex = idx, true
	}
	p.SubField = m[3]
	if m[4] != "" {
		idx, err := parseListIndex(m[4])
		if err != nil {
			return FieldPath{}, fmt.Errorf("%w: %q: %w", ErrInvalidFieldPath, s, err)
		}
		p.SubIndex, p.HasSubIndex = idx, true
	}

	return p, nil
}

// MustParseFieldPath is like [ParseFieldPath] but panics on error. Intended
// for literals in tests and tables.
func MustParseFieldPath(s string) FieldPath {
	p, err := ParseFieldPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the path back into its textual form.
func (p FieldPath) String() string {
	s := p.Field
	if p.HasIndex {
		s += "[" + strconv.Itoa(p.Index) + "]"
		if p.SubField != "" {
			s += "." + p.SubField
			if p.HasSubIndex {
				s += "[" + strconv.Itoa(p.SubIndex) + "]"
			}
		}
	}
	return s
}

// IsTopLevel reports whether the path addresses a scalar field of the
// content itself rather than a list element.
func (p FieldPath) IsTopLevel() bool {
	return !p.HasIndex
}

func parseListIndex(s string) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if idx > maxListIndex {
		return 0, fmt.Errorf("index %d exceeds %d", idx, maxListIndex)
	}
	return idx, nil
}

// growTo extends list with seed values until index is addressable.
func growTo[T any](list []T, index int, seed func(i int) T) []T {
	for len(list) <= index {
		list = append(list, seed(len(list)))
	}
	return list
}
