// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package paramset

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

type (
	// Vector3f is a 3-component real vector.
	Vector3f struct {
		X float64 `cty:"x"`
		Y float64 `cty:"y"`
		Z float64 `cty:"z"`
	}

	// Vector3i is a 3-component integer vector.
	Vector3i struct {
		X int `cty:"x"`
		Y int `cty:"y"`
		Z int `cty:"z"`
	}

	// Normal3f is a surface normal.
	Normal3f struct {
		X float64 `cty:"x"`
		Y float64 `cty:"y"`
		Z float64 `cty:"z"`
	}

	// Point3f is a point in 3D space.
	Point3f struct {
		X float64 `cty:"x"`
		Y float64 `cty:"y"`
		Z float64 `cty:"z"`
	}

	// Point2i is an integer point in 2D space, e.g. a pixel coordinate.
	Point2i struct {
		X int `cty:"x"`
		Y int `cty:"y"`
	}

	// Color is an RGB triple. It is also used for SPECTRUM values.
	Color struct {
		R float64 `cty:"r"`
		G float64 `cty:"g"`
		B float64 `cty:"b"`
	}

	// Value is an immutable typed value. Kind tags the payload V and
	// determines its shape: numbers, strings and booleans are cty
	// primitives, vectors and colors are objects ({x,y,z} or {r,g,b})
	// and arrays are lists of these.
	Value struct {
		Kind Kind
		V    cty.Value
	}
)

var (
	xyzType = cty.Object(map[string]cty.Type{"x": cty.Number, "y": cty.Number, "z": cty.Number})
	rgbType = cty.Object(map[string]cty.Type{"r": cty.Number, "g": cty.Number, "b": cty.Number})
)

// BoolVal returns a BOOL value.
func BoolVal(b bool) Value {
	return Value{Kind: KindBool, V: cty.BoolVal(b)}
}

// IntVal returns an INT value.
func IntVal(i int) Value {
	return Value{Kind: KindInt, V: cty.NumberIntVal(int64(i))}
}

// UintVal returns a UINT value.
func UintVal(u uint) Value {
	return Value{Kind: KindUint, V: cty.NumberUIntVal(uint64(u))}
}

// RealVal returns a REAL value. f must not be NaN.
func RealVal(f float64) Value {
	return Value{Kind: KindReal, V: cty.NumberFloatVal(f)}
}

// StringVal returns a STRING value.
func StringVal(s string) Value {
	return Value{Kind: KindString, V: cty.StringVal(s)}
}

// Vector3fVal returns a VEC3F value.
func Vector3fVal(v Vector3f) Value {
	return Value{Kind: KindVector3f, V: xyzFloat(v.X, v.Y, v.Z)}
}

// Vector3iVal returns a VEC3I value.
func Vector3iVal(v Vector3i) Value {
	return Value{Kind: KindVector3i, V: xyzInt(v)}
}

// Normal3fVal returns a NORMAL3F value.
func Normal3fVal(n Normal3f) Value {
	return Value{Kind: KindNormal3f, V: xyzFloat(n.X, n.Y, n.Z)}
}

// Point3fVal returns a POINT3F value.
func Point3fVal(p Point3f) Value {
	return Value{Kind: KindPoint3f, V: xyzFloat(p.X, p.Y, p.Z)}
}

// Point2iVal returns a POINT2I value.
func Point2iVal(p Point2i) Value {
	return Value{Kind: KindPoint2i, V: cty.ObjectVal(map[string]cty.Value{
		"x": cty.NumberIntVal(int64(p.X)),
		"y": cty.NumberIntVal(int64(p.Y)),
	})}
}

// ColorVal returns a COLOR value.
func ColorVal(c Color) Value {
	return Value{Kind: KindColor, V: rgb(c)}
}

// SpectrumVal returns a SPECTRUM value.
func SpectrumVal(c Color) Value {
	return Value{Kind: KindSpectrum, V: rgb(c)}
}

// IntsVal returns an ARR_INT value.
func IntsVal(vs []int) Value {
	return Value{Kind: KindInts, V: listOf(cty.Number, len(vs), func(i int) cty.Value {
		return cty.NumberIntVal(int64(vs[i]))
	})}
}

// RealsVal returns an ARR_REAL value.
func RealsVal(vs []float64) Value {
	return Value{Kind: KindReals, V: listOf(cty.Number, len(vs), func(i int) cty.Value {
		return cty.NumberFloatVal(vs[i])
	})}
}

// Vector3fsVal returns an ARR_VEC3F value.
func Vector3fsVal(vs []Vector3f) Value {
	return Value{Kind: KindVector3fs, V: listOf(xyzType, len(vs), func(i int) cty.Value {
		return xyzFloat(vs[i].X, vs[i].Y, vs[i].Z)
	})}
}

// Vector3isVal returns an ARR_VEC3I value.
func Vector3isVal(vs []Vector3i) Value {
	return Value{Kind: KindVector3is, V: listOf(xyzType, len(vs), func(i int) cty.Value {
		return xyzInt(vs[i])
	})}
}

// Point3fsVal returns an ARR_POINT3F value.
func Point3fsVal(ps []Point3f) Value {
	return Value{Kind: KindPoint3fs, V: listOf(xyzType, len(ps), func(i int) cty.Value {
		return xyzFloat(ps[i].X, ps[i].Y, ps[i].Z)
	})}
}

// Normal3fsVal returns an ARR_NORMAL3F value.
func Normal3fsVal(ns []Normal3f) Value {
	return Value{Kind: KindNormal3fs, V: listOf(xyzType, len(ns), func(i int) cty.Value {
		return xyzFloat(ns[i].X, ns[i].Y, ns[i].Z)
	})}
}

// ColorsVal returns an ARR_COLOR value.
func ColorsVal(cs []Color) Value {
	return Value{Kind: KindColors, V: listOf(rgbType, len(cs), func(i int) cty.Value {
		return rgb(cs[i])
	})}
}

// As decodes the payload of v into the Go value pointed to by target.
// For example:
//
//	var c paramset.Color
//	if err := v.As(&c); err != nil {
//		return err
//	}
func (v Value) As(target any) error {
	return gocty.FromCtyValue(v.V, target)
}

// Equal reports if v and o hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.V.IsNull() || o.V.IsNull() {
		return v.V.IsNull() && o.V.IsNull()
	}
	return v.V.RawEquals(o.V)
}

// String returns the value in its textual form, the same grammar
// the values are read from: whitespace-separated components.
func (v Value) String() string {
	if v.V.IsNull() {
		return ""
	}
	switch v.Kind {
	case KindString:
		return v.V.AsString()
	case KindBool:
		return strconv.FormatBool(v.V.True())
	}
	return strings.Join(appendText(nil, v.V), " ")
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return ctyjson.Marshal(v.V, v.V.Type())
}

func appendText(parts []string, v cty.Value) []string {
	t := v.Type()
	switch {
	case t == cty.Number:
		return append(parts, numberText(v.AsBigFloat()))
	case t.IsObjectType():
		names := []string{"x", "y", "z"}
		if t.HasAttribute("r") {
			names = []string{"r", "g", "b"}
		}
		for _, n := range names {
			if t.HasAttribute(n) {
				parts = appendText(parts, v.GetAttr(n))
			}
		}
	case t.IsListType():
		for _, e := range v.AsValueSlice() {
			parts = appendText(parts, e)
		}
	}
	return parts
}

func numberText(f *big.Float) string {
	if f.IsInt() {
		return f.Text('f', 0)
	}
	r, _ := f.Float64()
	return strconv.FormatFloat(r, 'g', -1, 64)
}

func xyzFloat(x, y, z float64) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"x": cty.NumberFloatVal(x),
		"y": cty.NumberFloatVal(y),
		"z": cty.NumberFloatVal(z),
	})
}

func xyzInt(v Vector3i) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"x": cty.NumberIntVal(int64(v.X)),
		"y": cty.NumberIntVal(int64(v.Y)),
		"z": cty.NumberIntVal(int64(v.Z)),
	})
}

func rgb(c Color) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"r": cty.NumberFloatVal(c.R),
		"g": cty.NumberFloatVal(c.G),
		"b": cty.NumberFloatVal(c.B),
	})
}

// listOf returns a cty list of n elements. An empty list keeps its
// element type, so it decodes to an empty (non-nil) slice.
func listOf(ety cty.Type, n int, elem func(int) cty.Value) cty.Value {
	if n == 0 {
		return cty.ListValEmpty(ety)
	}
	vs := make([]cty.Value, n)
	for i := range vs {
		vs[i] = elem(i)
	}
	return cty.ListVal(vs)
}
