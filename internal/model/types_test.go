package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTypeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"App.Widget", "App.Widget"},
		{"App.List^1", "App.List`1"},
		{"App.Map^2", "App.Map`2"},
		{"App.Outer^1.Inner^1", "App.Outer`1.Inner`1"},
		{"App.List`1", "App.List`1"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTypeName(tt.in))
		})
	}
}

func TestTypeKey_FullName(t *testing.T) {
	assert.Equal(t, "App.Models.Widget", TypeKey{Namespace: "App.Models", Name: "Widget"}.FullName())
	assert.Equal(t, "App.Models.List`1", TypeKey{Namespace: "App.Models", Name: "List^1"}.String())
	assert.Equal(t, "Widget", TypeKey{Name: "Widget"}.FullName())
}

func TestSplitFullName(t *testing.T) {
	assert.Equal(t, TypeKey{Namespace: "App.Models", Name: "Widget"}, SplitFullName("App.Models.Widget"))
	assert.Equal(t, TypeKey{Name: "Widget"}, SplitFullName("Widget"))
}

func TestPropertyID_String(t *testing.T) {
	assert.Equal(t, "App.Widget.Color", PropertyID{Type: "App.Widget", Name: "Color"}.String())
}

func TestDocumentTypeName(t *testing.T) {
	assert.Equal(t, "List^1", DocumentTypeName("List`1"))
	assert.Equal(t, "Widget", DocumentTypeName("Widget"))
	assert.Equal(t, "App.List`1", NormalizeTypeName(DocumentTypeName("App.List`1")))
}
