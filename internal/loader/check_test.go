package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_CollectsEverything(t *testing.T) {
	f := newFixture()

	a := parseYAML(t, "a.yaml", `
namespaces:
  - name: App.Models
    display_name: Models
    classes:
      - name: Widget
        properties:
          - name: Weight
      - name: Sprocket
  - display_name: NoName
`)
	b := parseYAML(t, "b.yaml", `
namespaces:
  - name: App.Models
    display_name: Again
    classes:
      - name: Widget
`)

	res := f.loader.Check(a, b)
	require.True(t, res.HasErrors())

	var codes []string
	for _, d := range res.Errors {
		codes = append(codes, d.Code+" "+d.Source+" "+d.Entity)
	}

	assert.Equal(t, []string{
		"unresolved_reference a.yaml App.Models.Widget.Weight",
		"unresolved_reference a.yaml App.Models.Sprocket",
		"configuration_error a.yaml ",
		"duplicate_declaration b.yaml App.Models",
		"duplicate_declaration b.yaml App.Models.Widget",
	}, codes)

	// Nothing was committed.
	types, props := f.catalog.Len()
	assert.Zero(t, types)
	assert.Zero(t, props)
	assert.Zero(t, f.remapper.Len())
}

func TestCheck_Valid(t *testing.T) {
	f := newFixture()

	res := f.loader.Check(parseYAML(t, "ok.yaml", `
namespaces:
  - name: App.Models
    classes:
      - name: Widget
`))

	assert.True(t, res.IsValid())
	require.Len(t, res.Infos, 1)
	assert.Contains(t, res.Infos[0].Message, "1 type overrides")
}

func TestCheck_SeesCommittedState(t *testing.T) {
	f := newFixture()

	doc := `
namespaces:
  - name: App.Models
    classes:
      - name: Widget
`
	require.NoError(t, f.loader.Load(parseYAML(t, "loaded.yaml", doc)))

	res := f.loader.Check(parseYAML(t, "again.yaml", doc))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "duplicate_declaration", res.Errors[0].Code)
}

func TestCheck_Warnings(t *testing.T) {
	f := newFixture()

	res := f.loader.Check(
		parseYAML(t, "empty.yaml", "version: \"1\"\n"),
		parseYAML(t, "bare.yaml", `
namespaces:
  - name: App.Models
    classes:
      - name: Widget
        properties:
          - name: Color
          - name: Size
            get: this.s
`),
	)

	assert.False(t, res.HasErrors())
	require.Len(t, res.Warnings, 2)

	assert.Equal(t, "empty_document", res.Warnings[0].Code)
	assert.Equal(t, "empty.yaml", res.Warnings[0].Source)

	assert.Equal(t, "empty_property_override", res.Warnings[1].Code)
	assert.Equal(t, "bare.yaml", res.Warnings[1].Source)
	assert.Equal(t, "App.Models.Widget.Color", res.Warnings[1].Entity)
}
