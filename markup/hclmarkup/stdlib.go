// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package hclmarkup

import (
	"math"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/tryfunc"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: make(map[string]cty.Value),
		Functions: stdFuncs(),
	}
}

// standard functions exist in scene files.
func stdFuncs() map[string]function.Function {
	return map[string]function.Function{
		"abs":       stdlib.AbsoluteFunc,
		"can":       tryfunc.CanFunc,
		"ceil":      stdlib.CeilFunc,
		"concat":    stdlib.ConcatFunc,
		"flatten":   stdlib.FlattenFunc,
		"floor":     stdlib.FloorFunc,
		"format":    stdlib.FormatFunc,
		"join":      stdlib.JoinFunc,
		"length":    stdlib.LengthFunc,
		"log":       stdlib.LogFunc,
		"lower":     stdlib.LowerFunc,
		"max":       stdlib.MaxFunc,
		"min":       stdlib.MinFunc,
		"parseint":  stdlib.ParseIntFunc,
		"pow":       stdlib.PowFunc,
		"radians":   radiansFunc,
		"range":     stdlib.RangeFunc,
		"reverse":   stdlib.ReverseListFunc,
		"rgb255":    rgb255Func,
		"signum":    stdlib.SignumFunc,
		"slice":     stdlib.SliceFunc,
		"split":     stdlib.SplitFunc,
		"trimspace": stdlib.TrimSpaceFunc,
		"try":       tryfunc.TryFunc,
		"upper":     stdlib.UpperFunc,
	}
}

var (
	// radiansFunc converts an angle in degrees to radians.
	radiansFunc = function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "degrees", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			d, _ := args[0].AsBigFloat().Float64()
			return cty.NumberFloatVal(d * math.Pi / 180), nil
		},
	})

	// rgb255Func scales a color given in the [0, 255] range to [0, 1].
	rgb255Func = function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "r", Type: cty.Number},
			{Name: "g", Type: cty.Number},
			{Name: "b", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Tuple([]cty.Type{cty.Number, cty.Number, cty.Number})),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			vs := make([]cty.Value, len(args))
			for i, a := range args {
				f := new(big.Float).Quo(a.AsBigFloat(), big.NewFloat(255))
				vs[i] = cty.NumberVal(f)
			}
			return cty.TupleVal(vs), nil
		},
	})
)
