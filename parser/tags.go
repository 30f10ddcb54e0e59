// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package parser

import (
	"fmt"
	"strings"

	"github.com/TarsilaSamille/rt3/api"
	"github.com/TarsilaSamille/rt3/paramset"
)

type (
	// Param declares an expected attribute of a tag and its kind.
	Param struct {
		Kind paramset.Kind
		Name string
	}

	// TagSpec describes a tag the walker recognizes.
	TagSpec struct {
		// Name of the tag. Matched case-insensitively.
		Name string

		// Params is the declared attribute list of the tag.
		Params []Param

		// Nested makes the walker descend into the children
		// of the tag after it was handled.
		Nested bool

		// Call hands the parameter set to the API. If nil, the
		// set is passed to the Directive method of the API.
		Call func(api.API, *paramset.ParamSet) error
	}
)

// Declared attribute lists of the built-in tags.
var (
	BackgroundParams = []Param{
		{paramset.KindString, "type"},
		{paramset.KindString, "filename"}, // Texture file name.
		{paramset.KindString, "mapping"},  // Type of mapping required.
		{paramset.KindColor, "color"},     // Single color for the entire background.
		{paramset.KindColor, "tl"},        // Top-left corner.
		{paramset.KindColor, "tr"},        // Top-right corner.
		{paramset.KindColor, "bl"},        // Bottom-left corner.
		{paramset.KindColor, "br"},        // Bottom-right corner.
	}
	FilmParams = []Param{
		{paramset.KindString, "type"},
		{paramset.KindString, "filename"},
		{paramset.KindString, "img_type"},
		{paramset.KindInt, "x_res"},
		{paramset.KindInt, "y_res"},
		{paramset.KindReals, "crop_window"},
		{paramset.KindString, "gamma_corrected"}, // bool
	}
)

func builtinTags() []TagSpec {
	return []TagSpec{
		{
			Name:   "background",
			Params: BackgroundParams,
			Call: func(a api.API, ps *paramset.ParamSet) error {
				return a.Background(ps)
			},
		},
		{
			Name:   "film",
			Params: FilmParams,
			Call: func(a api.API, ps *paramset.ParamSet) error {
				return a.Film(ps)
			},
		},
		{
			Name: "world_begin",
			Call: func(a api.API, _ *paramset.ParamSet) error {
				return a.WorldBegin()
			},
		},
		{
			Name: "world_end",
			Call: func(a api.API, _ *paramset.ParamSet) error {
				return a.WorldEnd()
			},
		},
	}
}

// NormalizeTag returns the canonical form of a tag name,
// used for matching tags case-insensitively.
func NormalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *TagSpec) call(a api.API, ps *paramset.ParamSet) error {
	if s.Call != nil {
		return s.Call(a, ps)
	}
	d, ok := a.(api.Directive)
	if !ok {
		return fmt.Errorf("api %T does not accept directives", a)
	}
	return d.Directive(s.Name, ps)
}
