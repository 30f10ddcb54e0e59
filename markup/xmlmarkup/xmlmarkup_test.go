// Copyright 2021-present The Atlas Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package xmlmarkup

import (
	"testing"

	"github.com/TarsilaSamille/rt3/markup"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(`<?xml version="1.0" encoding="utf-8"?>
<!-- scene -->
<RT3>
  <Background type="single_color" color="0.1 0.2 0.3"/>
  text is ignored
  <film x_res="800" y_res="600" filename="a &amp; b.png">
    <nested/>
  </film>
</RT3>`))
	require.NoError(t, err)
	root := doc.Root()
	require.NotNil(t, root)
	require.Equal(t, "RT3", root.Tag())
	_, ok := root.Attr("type")
	require.False(t, ok)

	bg := root.FirstChild()
	require.NotNil(t, bg)
	require.Equal(t, "Background", bg.Tag())
	v, ok := bg.Attr("color")
	require.True(t, ok)
	require.Equal(t, "0.1 0.2 0.3", v)
	require.Nil(t, bg.FirstChild())

	film := bg.NextSibling()
	require.NotNil(t, film)
	require.Equal(t, "film", film.Tag())
	v, ok = film.Attr("filename")
	require.True(t, ok)
	require.Equal(t, "a & b.png", v)
	require.Nil(t, film.NextSibling())
	children := markup.Children(film)
	require.Len(t, children, 1)
	require.Equal(t, "nested", children[0].Tag())
}

func TestParse_Empty(t *testing.T) {
	doc, err := Parse([]byte(`<?xml version="1.0"?>`))
	require.NoError(t, err)
	require.Nil(t, doc.Root())

	doc, err = Parse([]byte(`<RT3></RT3>`))
	require.NoError(t, err)
	require.Nil(t, doc.Root().FirstChild())
}

func TestParse_Invalid(t *testing.T) {
	for _, src := range []string{
		`<RT3><film></RT3>`,
		`<RT3>`,
		`<RT3><film x_res=10/></RT3>`,
	} {
		_, err := Parse([]byte(src))
		require.Error(t, err, src)
	}
}
