// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/TarsilaSamille/rt3/markup"
	"github.com/TarsilaSamille/rt3/paramset"
)

// Read reads the named attribute of e as a value of kind k. It reports
// false if the attribute is missing, if its text cannot be converted
// to k, or if k has no text conversion.
//
// Booleans are never read by this function. Boolean attributes are
// declared as STRING and interpreted by paramset.ParamSet.Bool.
func Read(e markup.Element, name string, k paramset.Kind) (paramset.Value, bool) {
	text, ok := e.Attr(name)
	if !ok {
		return paramset.Value{}, false
	}
	read := reader(k)
	if read == nil {
		return paramset.Value{}, false
	}
	return read(text)
}

// reader returns the text conversion for kind k, or nil if k has none.
func reader(k paramset.Kind) func(string) (paramset.Value, bool) {
	switch k {
	case paramset.KindInt:
		return readInt
	case paramset.KindUint:
		return readUint
	case paramset.KindReal:
		return readReal
	case paramset.KindString:
		return readString
	case paramset.KindVector3f:
		return readVector3f
	case paramset.KindVector3i:
		return readVector3i
	case paramset.KindNormal3f:
		return readNormal3f
	case paramset.KindPoint3f:
		return readPoint3f
	case paramset.KindPoint2i:
		return readPoint2i
	case paramset.KindColor:
		return readColor
	case paramset.KindSpectrum:
		return readSpectrum
	case paramset.KindInts:
		return readInts
	case paramset.KindReals:
		return readReals
	case paramset.KindVector3fs:
		return readVector3fs
	case paramset.KindVector3is:
		return readVector3is
	case paramset.KindPoint3fs:
		return readPoint3fs
	case paramset.KindColors:
		return readColors
	case paramset.KindNormal3fs:
		return readNormal3fs
	case paramset.KindBool:
		// The markup layers cannot be trusted with boolean text.
		return nil
	default:
		return nil
	}
}

func readString(s string) (paramset.Value, bool) {
	return paramset.StringVal(s), true
}

func readInt(s string) (paramset.Value, bool) {
	i, ok := integers(s, 1, true)
	if !ok {
		return paramset.Value{}, false
	}
	return paramset.IntVal(i[0]), true
}

func readUint(s string) (paramset.Value, bool) {
	f := strings.Fields(s)
	if len(f) != 1 {
		return paramset.Value{}, false
	}
	u, err := strconv.ParseUint(f[0], 10, 0)
	if err != nil {
		return paramset.Value{}, false
	}
	return paramset.UintVal(uint(u)), true
}

func readReal(s string) (paramset.Value, bool) {
	r, ok := reals(s, 1, true)
	if !ok {
		return paramset.Value{}, false
	}
	return paramset.RealVal(r[0]), true
}

func readVector3f(s string) (paramset.Value, bool) {
	r, ok := reals(s, 3, true)
	if !ok {
		return paramset.Value{}, false
	}
	return paramset.Vector3fVal(paramset.Vector3f{X: r[0], Y: r[1], Z: r[2]}), true
}

func readVector3i(s string) (paramset.Value, bool) {
	i, ok := integers(s, 3, true)
	if !ok {
		return paramset.Value{}, false
	}
	return paramset.Vector3iVal(paramset.Vector3i{X: i[0], Y: i[1], Z: i[2]}), true
}

func readNormal3f(s string) (paramset.Value, bool) {
	r, ok := reals(s, 3, true)
	if !ok {
		return paramset.Value{}, false
	}
	return paramset.Normal3fVal(paramset.Normal3f{X: r[0], Y: r[1], Z: r[2]}), true
}

func readPoint3f(s string) (paramset.Value, bool) {
	r, ok := reals(s, 3, true)
	if !ok {
		return paramset.Value{}, false
	}
	return paramset.Point3fVal(paramset.Point3f{X: r[0], Y: r[1], Z: r[2]}), true
}

func readPoint2i(s string) (paramset.Value, bool) {
	i, ok := integers(s, 2, true)
	if !ok {
		return paramset.Value{}, false
	}
	return paramset.Point2iVal(paramset.Point2i{X: i[0], Y: i[1]}), true
}

func readColor(s string) (paramset.Value, bool) {
	r, ok := reals(s, 3, true)
	if !ok {
		return paramset.Value{}, false
	}
	return paramset.ColorVal(paramset.Color{R: r[0], G: r[1], B: r[2]}), true
}

func readSpectrum(s string) (paramset.Value, bool) {
	r, ok := reals(s, 3, true)
	if !ok {
		return paramset.Value{}, false
	}
	return paramset.SpectrumVal(paramset.Color{R: r[0], G: r[1], B: r[2]}), true
}

func readInts(s string) (paramset.Value, bool) {
	i, ok := integers(s, 1, false)
	if !ok {
		return paramset.Value{}, false
	}
	return paramset.IntsVal(i), true
}

func readReals(s string) (paramset.Value, bool) {
	r, ok := reals(s, 1, false)
	if !ok {
		return paramset.Value{}, false
	}
	return paramset.RealsVal(r), true
}

func readVector3fs(s string) (paramset.Value, bool) {
	r, ok := reals(s, 3, false)
	if !ok {
		return paramset.Value{}, false
	}
	vs := make([]paramset.Vector3f, len(r)/3)
	for i := range vs {
		vs[i] = paramset.Vector3f{X: r[3*i], Y: r[3*i+1], Z: r[3*i+2]}
	}
	return paramset.Vector3fsVal(vs), true
}

func readVector3is(s string) (paramset.Value, bool) {
	n, ok := integers(s, 3, false)
	if !ok {
		return paramset.Value{}, false
	}
	vs := make([]paramset.Vector3i, len(n)/3)
	for i := range vs {
		vs[i] = paramset.Vector3i{X: n[3*i], Y: n[3*i+1], Z: n[3*i+2]}
	}
	return paramset.Vector3isVal(vs), true
}

func readPoint3fs(s string) (paramset.Value, bool) {
	r, ok := reals(s, 3, false)
	if !ok {
		return paramset.Value{}, false
	}
	ps := make([]paramset.Point3f, len(r)/3)
	for i := range ps {
		ps[i] = paramset.Point3f{X: r[3*i], Y: r[3*i+1], Z: r[3*i+2]}
	}
	return paramset.Point3fsVal(ps), true
}

func readNormal3fs(s string) (paramset.Value, bool) {
	r, ok := reals(s, 3, false)
	if !ok {
		return paramset.Value{}, false
	}
	ns := make([]paramset.Normal3f, len(r)/3)
	for i := range ns {
		ns[i] = paramset.Normal3f{X: r[3*i], Y: r[3*i+1], Z: r[3*i+2]}
	}
	return paramset.Normal3fsVal(ns), true
}

func readColors(s string) (paramset.Value, bool) {
	r, ok := reals(s, 3, false)
	if !ok {
		return paramset.Value{}, false
	}
	cs := make([]paramset.Color, len(r)/3)
	for i := range cs {
		cs[i] = paramset.Color{R: r[3*i], G: r[3*i+1], B: r[3*i+2]}
	}
	return paramset.ColorsVal(cs), true
}

// tokens splits s by whitespace. If exact is set, it reports whether there
// are exactly n tokens, otherwise whether their count is a multiple of n.
func tokens(s string, n int, exact bool) ([]string, bool) {
	f := strings.Fields(s)
	if exact {
		return f, len(f) == n
	}
	return f, len(f)%n == 0
}

func integers(s string, n int, exact bool) ([]int, bool) {
	f, ok := tokens(s, n, exact)
	if !ok {
		return nil, false
	}
	vs := make([]int, len(f))
	for i := range f {
		v, err := strconv.Atoi(f[i])
		if err != nil {
			return nil, false
		}
		vs[i] = v
	}
	return vs, true
}

// reals parses finite real numbers. NaN and infinities are rejected.
func reals(s string, n int, exact bool) ([]float64, bool) {
	f, ok := tokens(s, n, exact)
	if !ok {
		return nil, false
	}
	vs := make([]float64, len(f))
	for i := range f {
		v, err := strconv.ParseFloat(f[i], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		vs[i] = v
	}
	return vs, true
}
