package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Color", "Colour", 1},
		{"Hello", "hello", 1},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("abc", "abc"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.5, Similarity("ab", "abcd"), 1e-9)
}

func TestTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"OrderID", []string{"Order", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"single_ctor", []string{"single", "ctor"}},
		{"List`1", []string{"List`1"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokens(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "colorname", Normalize("ColorName"))
	assert.Equal(t, "colorname", Normalize("color_name"))
	assert.Equal(t, "list^1", Normalize("List^1"))
}

func TestClosest(t *testing.T) {
	props := []string{"Color", "Size", "Shade"}

	got, ok := Closest("Colour", props)
	assert.True(t, ok)
	assert.Equal(t, "Color", got)

	got, ok = Closest("size", props)
	assert.True(t, ok)
	assert.Equal(t, "Size", got)

	_, ok = Closest("Weight", props)
	assert.False(t, ok)

	_, ok = Closest("Color", []string{"Color"})
	assert.False(t, ok, "exact match is not a suggestion")

	_, ok = Closest("Color", nil)
	assert.False(t, ok)
}

func TestHint(t *testing.T) {
	assert.Equal(t, " (did you mean App.Models.Widget?)",
		Hint("App.Models.Widgte", []string{"App.Models.Gadget", "App.Models.Widget"}))
	assert.Empty(t, Hint("Nothing", []string{"Color"}))
}
