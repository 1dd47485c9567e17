package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridge-meta/internal/diagnostic"
	"bridge-meta/internal/session"
)

func strPtr(s string) *string { return &s }

func TestOverridden(t *testing.T) {
	plain := session.TypeView{Source: "App.Models.Widget", Namespace: "App.Models", Name: "Widget", Bound: true}
	assert.False(t, overridden(plain))

	renamed := plain
	renamed.Name = "UIWidget"
	assert.True(t, overridden(renamed))

	remapped := plain
	remapped.Namespace = "Models"
	assert.True(t, overridden(remapped))

	templated := plain
	templated.Properties = []session.PropertyView{{Name: "Color", GetTemplate: strPtr("#this.c")}}
	assert.True(t, overridden(templated))

	unbound := renamed
	unbound.Bound = false
	assert.False(t, overridden(unbound))
}

func TestPrintView(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printView(&buf, session.TypeView{
		Source:            "App.Models.Widget",
		Namespace:         "Models",
		Name:              "UIWidget",
		SingleConstructor: true,
		Bound:             true,
		Properties: []session.PropertyView{
			{Name: "Color", GetTemplate: strPtr("#this.c"), SetTemplate: strPtr("#this.c = #value")},
		},
		Renamed: []string{"getColor"},
	})

	out := buf.String()
	assert.Contains(t, out, "Models.UIWidget  <- App.Models.Widget\n")
	assert.Contains(t, out, "  single constructor\n")
	assert.Contains(t, out, "  get Color: #this.c\n")
	assert.Contains(t, out, "  set Color: #this.c = #value\n")
	assert.Contains(t, out, "  rename needed: getColor\n")
	assert.NotContains(t, out, "not in metadata image")
}

func TestApplyColor(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()

	require.NoError(t, applyColor("off"))
	assert.True(t, color.NoColor)

	require.NoError(t, applyColor("on"))
	assert.False(t, color.NoColor)

	require.NoError(t, applyColor("auto"))
	assert.Error(t, applyColor("sometimes"))
}

func TestErrorLabel(t *testing.T) {
	dup := diagnostic.Duplicate("App.Models.Widget", "type override").WithSource("b.yaml")

	assert.Equal(t, "error[duplicate_declaration]", errorLabel(dup))
	assert.Equal(t, "error[duplicate_declaration]", errorLabel(fmt.Errorf("loading: %w", dup)))
	assert.Equal(t, "error", errorLabel(errors.New("plain")))
}
