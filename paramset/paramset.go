// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package paramset holds the typed values read from a scene file and the
// parameter sets that group them per tag.
package paramset

import (
	"encoding/json"
	"strings"
)

type (
	// Param is a named Value.
	Param struct {
		Name  string
		Value Value
	}

	// ParamSet maps attribute names to typed values, keeping the order
	// in which they were first set. The zero value is an empty set.
	ParamSet struct {
		params []Param
	}
)

// New returns a ParamSet holding the given params.
func New(params ...Param) *ParamSet {
	s := &ParamSet{}
	for _, p := range params {
		s.Set(p.Name, p.Value)
	}
	return s
}

// Set sets the value of name. If a value with the same name
// exists, it is replaced by v.
func (s *ParamSet) Set(name string, v Value) {
	for i := range s.params {
		if s.params[i].Name == name {
			s.params[i].Value = v
			return
		}
	}
	s.params = append(s.params, Param{Name: name, Value: v})
}

// Lookup returns the value of name and reports whether it was found.
func (s *ParamSet) Lookup(name string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	for _, p := range s.params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return Value{}, false
}

// Has reports if the set holds a value for name.
func (s *ParamSet) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Len returns the number of values in the set.
func (s *ParamSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.params)
}

// Names returns the names in the set in insertion order.
func (s *ParamSet) Names() []string {
	names := make([]string, 0, s.Len())
	for _, p := range s.Params() {
		names = append(names, p.Name)
	}
	return names
}

// Params returns a copy of the params in insertion order.
func (s *ParamSet) Params() []Param {
	if s == nil {
		return nil
	}
	return append([]Param(nil), s.params...)
}

// Equal reports if both sets hold the same names mapped to equal values.
// Insertion order is ignored.
func (s *ParamSet) Equal(o *ParamSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, p := range s.Params() {
		v, ok := o.Lookup(p.Name)
		if !ok || !v.Equal(p.Value) {
			return false
		}
	}
	return true
}

// MarshalJSON implements json.Marshaler.
func (s *ParamSet) MarshalJSON() ([]byte, error) {
	m := make(map[string]Value, s.Len())
	for _, p := range s.Params() {
		m[p.Name] = p.Value
	}
	return json.Marshal(m)
}

// Get decodes the value of name into T. It reports false if the value
// is missing or cannot be represented as T.
func Get[T any](s *ParamSet, name string) (T, bool) {
	var t T
	v, ok := s.Lookup(name)
	if !ok {
		return t, false
	}
	if err := v.As(&t); err != nil {
		var zero T
		return zero, false
	}
	return t, true
}

// lookup is like Get, but also requires the stored value to be of one of the given kinds.
func lookup[T any](s *ParamSet, name string, kinds ...Kind) (T, bool) {
	var zero T
	v, ok := s.Lookup(name)
	if !ok {
		return zero, false
	}
	for _, k := range kinds {
		if v.Kind == k {
			return Get[T](s, name)
		}
	}
	return zero, false
}

// Int returns the INT value of name.
func (s *ParamSet) Int(name string) (int, bool) {
	return lookup[int](s, name, KindInt)
}

// Uint returns the UINT value of name.
func (s *ParamSet) Uint(name string) (uint, bool) {
	return lookup[uint](s, name, KindUint)
}

// Real returns the REAL value of name.
func (s *ParamSet) Real(name string) (float64, bool) {
	return lookup[float64](s, name, KindReal)
}

// String returns the STRING value of name.
func (s *ParamSet) String(name string) (string, bool) {
	return lookup[string](s, name, KindString)
}

// Bool returns the boolean value of name. Scene files carry booleans as
// text, so STRING values "true" and "false" (in any case) are accepted
// along with BOOL values. Any other text reports false.
func (s *ParamSet) Bool(name string) (bool, bool) {
	v, ok := s.Lookup(name)
	if !ok {
		return false, false
	}
	switch v.Kind {
	case KindBool:
		return lookup[bool](s, name, KindBool)
	case KindString:
		switch strings.ToLower(strings.TrimSpace(v.V.AsString())) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// Vector3f returns the VEC3F value of name.
func (s *ParamSet) Vector3f(name string) (Vector3f, bool) {
	return lookup[Vector3f](s, name, KindVector3f)
}

// Vector3i returns the VEC3I value of name.
func (s *ParamSet) Vector3i(name string) (Vector3i, bool) {
	return lookup[Vector3i](s, name, KindVector3i)
}

// Normal3f returns the NORMAL3F value of name.
func (s *ParamSet) Normal3f(name string) (Normal3f, bool) {
	return lookup[Normal3f](s, name, KindNormal3f)
}

// Point3f returns the POINT3F value of name.
func (s *ParamSet) Point3f(name string) (Point3f, bool) {
	return lookup[Point3f](s, name, KindPoint3f)
}

// Point2i returns the POINT2I value of name.
func (s *ParamSet) Point2i(name string) (Point2i, bool) {
	return lookup[Point2i](s, name, KindPoint2i)
}

// Color returns the COLOR or SPECTRUM value of name.
func (s *ParamSet) Color(name string) (Color, bool) {
	return lookup[Color](s, name, KindColor, KindSpectrum)
}

// Ints returns the ARR_INT value of name.
func (s *ParamSet) Ints(name string) ([]int, bool) {
	return lookup[[]int](s, name, KindInts)
}

// Reals returns the ARR_REAL value of name.
func (s *ParamSet) Reals(name string) ([]float64, bool) {
	return lookup[[]float64](s, name, KindReals)
}

// Vector3fs returns the ARR_VEC3F value of name.
func (s *ParamSet) Vector3fs(name string) ([]Vector3f, bool) {
	return lookup[[]Vector3f](s, name, KindVector3fs)
}

// Vector3is returns the ARR_VEC3I value of name.
func (s *ParamSet) Vector3is(name string) ([]Vector3i, bool) {
	return lookup[[]Vector3i](s, name, KindVector3is)
}

// Point3fs returns the ARR_POINT3F value of name.
func (s *ParamSet) Point3fs(name string) ([]Point3f, bool) {
	return lookup[[]Point3f](s, name, KindPoint3fs)
}

// Normal3fs returns the ARR_NORMAL3F value of name.
func (s *ParamSet) Normal3fs(name string) ([]Normal3f, bool) {
	return lookup[[]Normal3f](s, name, KindNormal3fs)
}

// Colors returns the ARR_COLOR value of name.
func (s *ParamSet) Colors(name string) ([]Color, bool) {
	return lookup[[]Color](s, name, KindColors)
}
