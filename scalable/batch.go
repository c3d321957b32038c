package scalable

import (
	"unsafe"

	"github.com/forestrie/go-fastbloom/bloom"
)

// stringBytes views s as a byte slice without copying. The slice must not be
// written to.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (f *Filter) AddString(s string) error { return f.Add(stringBytes(s)) }

func (f *Filter) IncludeString(s string) bool { return f.Include(stringBytes(s)) }

// AddIfAbsent adds value only if Include reports it absent, and returns true
// if it was added. Elements already (possibly) present do not count towards
// the filter's capacity.
//
// A false positive means a genuinely new element is reported as present and
// is not added.
func (f *Filter) AddIfAbsent(value []byte) (bool, error) {
	p := bloom.ProbesFor(value)
	if f.includeProbes(p) {
		return false, nil
	}
	l, err := f.writable()
	if err != nil {
		return false, err
	}
	l.AddProbes(p)
	f.count++
	return true, nil
}

// AddAll adds values in order, stopping at the first error. It returns the
// number added.
func (f *Filter) AddAll(values [][]byte) (int, error) {
	for i, v := range values {
		if err := f.Add(v); err != nil {
			return i, err
		}
	}
	return len(values), nil
}

func (f *Filter) AddAllStrings(values []string) (int, error) {
	for i, v := range values {
		if err := f.AddString(v); err != nil {
			return i, err
		}
	}
	return len(values), nil
}

// CountPossibleMatches returns how many of values Include reports present.
func (f *Filter) CountPossibleMatches(values [][]byte) int {
	n := 0
	for _, v := range values {
		if f.Include(v) {
			n++
		}
	}
	return n
}

// IncludeAny is true if at least one of values may be present.
func (f *Filter) IncludeAny(values [][]byte) bool {
	for _, v := range values {
		if f.Include(v) {
			return true
		}
	}
	return false
}

// IncludeAll is true if every one of values may be present. It is true for
// an empty list.
func (f *Filter) IncludeAll(values [][]byte) bool {
	for _, v := range values {
		if !f.Include(v) {
			return false
		}
	}
	return true
}
