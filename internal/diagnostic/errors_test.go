package diagnostic

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "duplicate with source",
			err:  Duplicate("App.Models.Widget", "type override").WithSource("a.yaml"),
			want: "a.yaml: duplicate declaration [App.Models.Widget]: type override is already declared",
		},
		{
			name: "unresolved without source",
			err:  Unresolved("App.Models.Nope", "type"),
			want: "unresolved reference [App.Models.Nope]: type not found in compiled program",
		},
		{
			name: "configuration",
			err:  Configuration("", "namespace name is empty"),
			want: "configuration error: namespace name is empty",
		},
		{
			name: "io",
			err:  IO("b.xml", fs.ErrNotExist),
			want: "b.xml: io error: file does not exist",
		},
		{
			name: "zero kind",
			err:  &Error{Message: "boom"},
			want: "error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_IsAndAs(t *testing.T) {
	err := fmt.Errorf("loading overrides: %w", Duplicate("App.Models", "namespace map"))

	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NotErrorIs(t, err, ErrUnresolved)
	assert.Equal(t, KindDuplicate, KindOf(err))

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "App.Models", e.Entity)

	ioErr := IO("x.yaml", fs.ErrPermission)
	assert.ErrorIs(t, ioErr, ErrIO)
	assert.ErrorIs(t, ioErr, fs.ErrPermission)

	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
}

func TestError_WithSourceKeepsOriginal(t *testing.T) {
	e := Unresolved("App.X", "type").WithSource("first.yaml")
	again := e.WithSource("second.yaml")

	assert.Same(t, e, again)
	assert.Equal(t, "first.yaml", again.Source)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "configuration", KindConfiguration.String())
	assert.Equal(t, "duplicate", KindDuplicate.String())
	assert.Equal(t, "unresolved", KindUnresolved.String())
	assert.Equal(t, "io", KindIO.String())
	assert.Equal(t, "unknown", Kind(42).String())
	assert.Equal(t, "duplicate_declaration", KindDuplicate.Code())
}
