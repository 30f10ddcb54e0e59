// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package parser_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TarsilaSamille/rt3/api"
	"github.com/TarsilaSamille/rt3/markup/hclmarkup"
	"github.com/TarsilaSamille/rt3/markup/xmlmarkup"
	"github.com/TarsilaSamille/rt3/paramset"
	"github.com/TarsilaSamille/rt3/parser"

	"github.com/stretchr/testify/require"
)

// collect returns a logger that appends all entries to entries.
func collect(entries *[]parser.Entry) parser.Option {
	return parser.WithLogger(parser.LoggerFunc(func(e parser.Entry) {
		*entries = append(*entries, e)
	}))
}

func warnings(entries []parser.Entry) []parser.Entry {
	var ws []parser.Entry
	for _, e := range entries {
		if e.Level() == parser.LevelWarn {
			ws = append(ws, e)
		}
	}
	return ws
}

func parseXML(t *testing.T, src string, opts ...parser.Option) (*api.Recorder, error) {
	t.Helper()
	doc, err := xmlmarkup.Parse([]byte(src))
	require.NoError(t, err)
	r := &api.Recorder{}
	return r, parser.New(r, opts...).ParseDocument(doc)
}

func TestParser_EndToEnd(t *testing.T) {
	r, err := parseXML(t, `
<RT3>
  <film x_res="800" y_res="600" type="image"/>
  <world_begin/>
  <world_end/>
</RT3>`)
	require.NoError(t, err)
	require.Equal(t, []string{"film", "world_begin", "world_end"}, r.Names())

	film := r.Calls[0].Params
	require.Equal(t, 3, film.Len())
	x, ok := film.Int("x_res")
	require.True(t, ok)
	require.Equal(t, 800, x)
	y, ok := film.Int("y_res")
	require.True(t, ok)
	require.Equal(t, 600, y)
	typ, ok := film.String("type")
	require.True(t, ok)
	require.Equal(t, "image", typ)

	require.Nil(t, r.Calls[1].Params)
	require.Nil(t, r.Calls[2].Params)
}

func TestParser_UnknownTag(t *testing.T) {
	var entries []parser.Entry
	r, err := parseXML(t, `<RT3><bg/><unknown/><film x_res="10" y_res="20"/></RT3>`, collect(&entries))
	require.NoError(t, err)
	require.Equal(t, []string{"film"}, r.Names())
	x, _ := r.Calls[0].Params.Int("x_res")
	y, _ := r.Calls[0].Params.Int("y_res")
	require.Equal(t, 10, x)
	require.Equal(t, 20, y)

	ws := warnings(entries)
	require.Equal(t, []parser.Entry{
		parser.UnknownTag{Tag: "bg", Depth: 0},
		parser.UnknownTag{Tag: "unknown", Depth: 0},
	}, ws)
	require.Equal(t, "undefined tag `unknown` found at level 0", ws[1].String())
}

func TestParser_CaseInsensitive(t *testing.T) {
	r, err := parseXML(t, `
<RT3>
  <Background color="1 0 0"/>
  <BACKGROUND color="0 1 0"/>
  <background color="0 0 1"/>
  <World_Begin/>
</RT3>`)
	require.NoError(t, err)
	require.Equal(t, []string{"background", "background", "background", "world_begin"}, r.Names())
	for i, want := range []paramset.Color{{R: 1}, {G: 1}, {B: 1}} {
		c, ok := r.Calls[i].Params.Color("color")
		require.True(t, ok)
		require.Equal(t, want, c)
	}
}

func TestParser_Errors(t *testing.T) {
	_, err := parseXML(t, ``)
	require.ErrorIs(t, err, parser.ErrNoRoot)
	_, err = parseXML(t, `<RT3></RT3>`)
	require.ErrorIs(t, err, parser.ErrEmptyScene)
	_, err = parseXML(t, `<RT3>text only</RT3>`)
	require.ErrorIs(t, err, parser.ErrEmptyScene)

	err = parser.Parse(filepath.Join(t.TempDir(), "missing.xml"), &api.Recorder{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

type failing struct {
	api.Recorder
}

func (*failing) WorldBegin() error {
	return errors.New("world already started")
}

func TestParser_APIError(t *testing.T) {
	doc, err := xmlmarkup.Parse([]byte(`<RT3><film/><world_begin/><world_end/></RT3>`))
	require.NoError(t, err)
	f := &failing{}
	err = parser.New(f).ParseDocument(doc)
	require.EqualError(t, err, `parser: tag "world_begin": world already started`)
	require.Equal(t, []string{"film"}, f.Names())
}

func TestPopulate(t *testing.T) {
	params := []parser.Param{
		{Kind: paramset.KindInt, Name: "x_res"},
		{Kind: paramset.KindInt, Name: "y_res"},
		{Kind: paramset.KindReal, Name: "ratio"},
		{Kind: paramset.KindVector3f, Name: "up"},
		{Kind: paramset.KindReals, Name: "crop_window"},
		{Kind: paramset.KindReals, Name: "empty"},
		{Kind: paramset.KindBool, Name: "flag"},
		{Kind: paramset.KindBool, Name: "absent_flag"},
	}
	e := element(t, `<RT3><film x_res="800" ratio="abc" up="1.0 2.0" crop_window="0.1 0.2 0.3 0.4" empty="" flag="true"/></RT3>`)

	var entries []parser.Entry
	p := parser.New(&api.Recorder{}, collect(&entries))
	ps, err := p.Populate(e, params)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"x_res", "crop_window", "empty"}, ps.Names())

	x, ok := ps.Int("x_res")
	require.True(t, ok)
	require.Equal(t, 800, x)
	require.False(t, ps.Has("y_res"))
	require.False(t, ps.Has("ratio"))
	require.False(t, ps.Has("up"))
	cw, ok := ps.Reals("crop_window")
	require.True(t, ok)
	require.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, cw)
	empty, ok := ps.Reals("empty")
	require.True(t, ok)
	require.Empty(t, empty)

	require.Equal(t, []parser.Entry{
		parser.BadValue{Tag: "film", Name: "ratio", Kind: paramset.KindReal, Text: "abc"},
		parser.BadValue{Tag: "film", Name: "up", Kind: paramset.KindVector3f, Text: "1.0 2.0"},
		parser.UnknownKind{Tag: "film", Name: "flag", Kind: paramset.KindBool},
	}, warnings(entries))

	again, err := p.Populate(e, params)
	require.NoError(t, err)
	require.True(t, ps.Equal(again))
}

func TestPopulate_Strict(t *testing.T) {
	e := element(t, `<RT3><film x_res="eight hundred"/></RT3>`)
	p := parser.New(&api.Recorder{}, parser.WithStrict())
	_, err := p.Populate(e, parser.FilmParams)
	require.ErrorIs(t, err, parser.ErrMalformed)
	require.Contains(t, err.Error(), `film.x_res value "eight hundred" as INT`)

	_, err = parseXML(t, `<RT3><film x_res="eight hundred"/></RT3>`, parser.WithStrict())
	require.ErrorIs(t, err, parser.ErrMalformed)

	r, err := parseXML(t, `<RT3><film x_res="eight hundred"/></RT3>`)
	require.NoError(t, err)
	require.Equal(t, 0, r.Calls[0].Params.Len())
}

func TestParser_WithTag(t *testing.T) {
	var entries []parser.Entry
	r, err := parseXML(t, `
<RT3>
  <film x_res="10" aspect="1.5"/>
  <camera fovy="45">
    <lens radius="0.5"/>
    <ignored/>
  </camera>
  <lens radius="1"/>
</RT3>`,
		collect(&entries),
		parser.WithTag(
			parser.TagSpec{
				Name:   "Film",
				Params: append([]parser.Param{{Kind: paramset.KindReal, Name: "aspect"}}, parser.FilmParams...),
			},
			parser.TagSpec{
				Name:   "camera",
				Params: []parser.Param{{Kind: paramset.KindReal, Name: "fovy"}},
				Nested: true,
			},
			parser.TagSpec{
				Name:   "lens",
				Params: []parser.Param{{Kind: paramset.KindReal, Name: "radius"}},
			},
		),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"film", "camera", "lens", "lens"}, r.Names())
	aspect, ok := r.Calls[0].Params.Real("aspect")
	require.True(t, ok)
	require.Equal(t, 1.5, aspect)
	radius, _ := r.Calls[2].Params.Real("radius")
	require.Equal(t, 0.5, radius)

	require.Equal(t, []parser.Entry{parser.UnknownTag{Tag: "ignored", Depth: 1}}, warnings(entries))
	require.Contains(t, entries, parser.Visit{Tag: "lens", Depth: 1})
	require.Contains(t, entries, parser.Visit{Tag: "lens", Depth: 0})

	p := parser.New(&api.Recorder{}, parser.WithTag(parser.TagSpec{Name: " CAMERA "}))
	s, ok := p.Tag("camera")
	require.True(t, ok)
	require.Equal(t, "camera", s.Name)
	_, ok = p.Tag("lens")
	require.False(t, ok)
}

type bare struct{}

func (bare) Background(*paramset.ParamSet) error { return nil }
func (bare) Film(*paramset.ParamSet) error       { return nil }
func (bare) WorldBegin() error                   { return nil }
func (bare) WorldEnd() error                     { return nil }

func TestParser_NoDirective(t *testing.T) {
	doc, err := xmlmarkup.Parse([]byte(`<RT3><camera/></RT3>`))
	require.NoError(t, err)
	err = parser.New(bare{}, parser.WithTag(parser.TagSpec{Name: "camera"})).ParseDocument(doc)
	require.EqualError(t, err, `parser: tag "camera": api parser_test.bare does not accept directives`)
}

func TestParse_Files(t *testing.T) {
	dir := t.TempDir()
	xml := filepath.Join(dir, "scene.xml")
	require.NoError(t, os.WriteFile(xml, []byte(`<RT3><film x_res="800" y_res="600" type="image"/><world_begin/><world_end/></RT3>`), 0644))
	hcl := filepath.Join(dir, "scene.hcl")
	require.NoError(t, os.WriteFile(hcl, []byte(`
film {
  x_res = 800
  y_res = 600
  type  = "image"
}
world_begin {}
world_end {}
`), 0644))

	var recs []*api.Recorder
	for _, path := range []string{xml, hcl} {
		r := &api.Recorder{}
		require.NoError(t, parser.Parse(path, r))
		require.Equal(t, []string{"film", "world_begin", "world_end"}, r.Names())
		recs = append(recs, r)
	}
	require.True(t, recs[0].Calls[0].Params.Equal(recs[1].Calls[0].Params))

	broken := filepath.Join(dir, "broken.xml")
	require.NoError(t, os.WriteFile(broken, []byte(`<RT3><film></RT3>`), 0644))
	err := parser.Parse(broken, &api.Recorder{})
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "parser: the file "))
}

func TestParser_HCL(t *testing.T) {
	doc, err := hclmarkup.Parse([]byte(`
background {
  type  = "single_color"
  color = [0.5, 0.5, 0.5]
}
film {
  crop_window     = [0, 1, 0, 1]
  gamma_corrected = "yes"
}
`), "scene.hcl")
	require.NoError(t, err)
	r := &api.Recorder{}
	require.NoError(t, parser.New(r).ParseDocument(doc))
	require.Equal(t, []string{"background", "film"}, r.Names())
	c, ok := r.Calls[0].Params.Color("color")
	require.True(t, ok)
	require.Equal(t, paramset.Color{R: 0.5, G: 0.5, B: 0.5}, c)
	cw, ok := r.Calls[1].Params.Reals("crop_window")
	require.True(t, ok)
	require.Equal(t, []float64{0, 1, 0, 1}, cw)
	_, ok = r.Calls[1].Params.Bool("gamma_corrected")
	require.False(t, ok)
}
