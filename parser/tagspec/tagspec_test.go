// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package tagspec_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TarsilaSamille/rt3/api"
	"github.com/TarsilaSamille/rt3/markup/xmlmarkup"
	"github.com/TarsilaSamille/rt3/paramset"
	"github.com/TarsilaSamille/rt3/parser"
	"github.com/TarsilaSamille/rt3/parser/tagspec"

	"github.com/stretchr/testify/require"
)

const schema = `
tag "Camera" {
  nested = true
  param "type" {
    kind = "STRING"
  }
  param "fovy" {
    kind = "real"
  }
}

tag "lens" {
  param "radius" {
    kind = "REAL"
  }
}

tag "film" {
  param "x_res" {
    kind = "INT"
  }
  param "aspect" {
    kind = "REAL"
  }
}
`

func TestDecode(t *testing.T) {
	specs, err := tagspec.Decode([]byte(schema), "tags.hcl")
	require.NoError(t, err)
	require.Len(t, specs, 3)
	require.Equal(t, "camera", specs[0].Name)
	require.True(t, specs[0].Nested)
	require.Equal(t, []parser.Param{
		{Kind: paramset.KindString, Name: "type"},
		{Kind: paramset.KindReal, Name: "fovy"},
	}, specs[0].Params)
	require.Equal(t, "lens", specs[1].Name)
	require.False(t, specs[1].Nested)
	require.Nil(t, specs[2].Call)

	specs, err = tagspec.Decode(nil, "empty.hcl")
	require.NoError(t, err)
	require.Empty(t, specs)
}

func TestDecode_Errors(t *testing.T) {
	for _, tt := range []struct {
		name, src, err string
	}{
		{
			name: "unknown kind",
			src:  `tag "camera" { param "fovy" { kind = "DOUBLE" } }`,
			err:  `tagspec: tag "camera" param "fovy": paramset: unknown kind "DOUBLE"`,
		},
		{
			name: "duplicate",
			src:  "tag \"lens\" {}\ntag \"LENS\" {}",
			err:  `tagspec: tag "lens" is defined more than once`,
		},
		{
			name: "empty name",
			src:  `tag " " {}`,
			err:  `tagspec: empty tag name`,
		},
		{
			name: "missing kind",
			src:  `tag "camera" { param "fovy" {} }`,
			err:  `Missing required argument`,
		},
		{
			name: "attribute",
			src:  `version = 1`,
			err:  `Unsupported argument`,
		},
		{
			name: "syntax",
			src:  `tag "camera" {`,
			err:  `Unclosed configuration block`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tagspec.Decode([]byte(tt.src), "tags.hcl")
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestOption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.hcl")
	require.NoError(t, os.WriteFile(path, []byte(schema), 0644))
	opt, err := tagspec.Option(path)
	require.NoError(t, err)

	doc, err := xmlmarkup.Parse([]byte(`
<RT3>
  <camera type="perspective" fovy="30"><lens radius="0.1"/></camera>
  <film x_res="640" y_res="480" aspect="1.33"/>
</RT3>`))
	require.NoError(t, err)
	r := &api.Recorder{}
	require.NoError(t, parser.New(r, opt).ParseDocument(doc))
	require.Equal(t, []string{"camera", "lens", "film"}, r.Names())
	fovy, ok := r.Calls[0].Params.Real("fovy")
	require.True(t, ok)
	require.Equal(t, 30.0, fovy)
	film := r.Calls[2].Params
	require.True(t, film.Has("aspect"))
	require.False(t, film.Has("y_res"))

	_, err = tagspec.Option(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}
