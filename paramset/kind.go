// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package paramset

import (
	"fmt"
	"strings"
)

// Kind identifies the semantic type of a Value. The set of kinds is closed.
type Kind int

// List of supported kinds.
const (
	KindBool      Kind = iota // Single boolean.
	KindInt                   // Single integer.
	KindUint                  // Single unsigned integer.
	KindReal                  // Single real number.
	KindVector3f              // Single Vector3f.
	KindVector3i              // Single Vector3i.
	KindNormal3f              // Single Normal3f.
	KindPoint3f               // Single Point3f.
	KindPoint2i               // Single Point2i.
	KindColor                 // Single Color.
	KindSpectrum              // Single Spectrum.
	KindString                // Single string.
	KindInts                  // An array of integers.
	KindReals                 // An array of real numbers.
	KindVector3fs             // An array of Vector3f.
	KindVector3is             // An array of Vector3i.
	KindPoint3fs              // An array of Point3f.
	KindColors                // An array of Color.
	KindNormal3fs             // An array of Normal3f.
)

var kindNames = [...]string{
	KindBool:      "BOOL",
	KindInt:       "INT",
	KindUint:      "UINT",
	KindReal:      "REAL",
	KindVector3f:  "VEC3F",
	KindVector3i:  "VEC3I",
	KindNormal3f:  "NORMAL3F",
	KindPoint3f:   "POINT3F",
	KindPoint2i:   "POINT2I",
	KindColor:     "COLOR",
	KindSpectrum:  "SPECTRUM",
	KindString:    "STRING",
	KindInts:      "ARR_INT",
	KindReals:     "ARR_REAL",
	KindVector3fs: "ARR_VEC3F",
	KindVector3is: "ARR_VEC3I",
	KindPoint3fs:  "ARR_POINT3F",
	KindColors:    "ARR_COLOR",
	KindNormal3fs: "ARR_NORMAL3F",
}

// Valid reports if k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

// IsArray reports if k describes an array of values.
func (k Kind) IsArray() bool {
	return k >= KindInts && k <= KindNormal3fs
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind named by s. Names are matched
// case-insensitively, e.g. "arr_real" and "ARR_REAL" are the same.
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("paramset: unknown kind %q", s)
}
