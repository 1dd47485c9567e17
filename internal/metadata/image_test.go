package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImage_Lookup(t *testing.T) {
	img, err := NewImage("App",
		TypeDef{Namespace: "App.Models", Name: "Widget", Properties: []PropertyDef{{Name: "Color"}}},
		TypeDef{Name: "Global"},
	)
	require.NoError(t, err)

	w, ok := img.ResolveType("App.Models.Widget")
	require.True(t, ok)
	assert.Equal(t, "App.Models.Widget", w.FullName())
	require.Len(t, w.Properties(), 1)
	assert.Equal(t, "Color", w.Properties()[0].Name())
	assert.Same(t, w, w.Properties()[0].DeclaringType())

	g, ok := img.ResolveType("Global")
	require.True(t, ok)
	assert.Equal(t, "Global", g.FullName())

	_, ok = img.ResolveType("App.Models.Missing")
	assert.False(t, ok)
}

func TestImage_LookupNormalizesArity(t *testing.T) {
	img, err := NewImage("App", TypeDef{Namespace: "App", Name: "List`1"})
	require.NoError(t, err)

	assert.NotNil(t, img.Lookup("App.List^1"))
	assert.NotNil(t, img.Lookup("App.List`1"))
	assert.Nil(t, img.Lookup("App.List"))
}

func TestNewImage_DuplicateType(t *testing.T) {
	_, err := NewImage("App",
		TypeDef{Namespace: "App", Name: "Widget"},
		TypeDef{Namespace: "App", Name: "Widget"},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate type App.Widget")
}

func TestNewImage_UnnamedType(t *testing.T) {
	_, err := NewImage("App", TypeDef{Namespace: "App"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no name")
}

func TestType_Accessors(t *testing.T) {
	img, err := NewImage("App",
		TypeDef{Namespace: "App", Name: "Shade", Kind: KindEnum},
		TypeDef{Namespace: "App", Name: "Widget", Kind: KindClass, Properties: []PropertyDef{
			{Name: "Size", HasGetter: true},
		}},
	)
	require.NoError(t, err)

	shade := img.Lookup("App.Shade")
	require.NotNil(t, shade)
	assert.True(t, shade.IsEnum())
	assert.Equal(t, "App", shade.Namespace())

	widget := img.Lookup("App.Widget")
	require.NotNil(t, widget)
	assert.False(t, widget.IsEnum())
	assert.Equal(t, KindClass, widget.Kind())

	size, ok := widget.Properties()[0].(*Property)
	require.True(t, ok)
	assert.True(t, size.HasGetter())
	assert.False(t, size.HasSetter())
	assert.Equal(t, "App.Widget.Size", size.String())
}

func TestNilImage(t *testing.T) {
	var img *Image
	assert.Nil(t, img.Lookup("App.Widget"))
}

func TestImage_TypeNames(t *testing.T) {
	img, err := NewImage("App",
		TypeDef{Namespace: "App.Models", Name: "Widget"},
		TypeDef{Namespace: "App", Name: "List^1"},
		TypeDef{Name: "Global"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"App.Models.Widget", "App.List`1", "Global"}, img.TypeNames())

	var empty *Image
	assert.Nil(t, empty.TypeNames())
}
