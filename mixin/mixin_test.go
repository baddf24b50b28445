package mixin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuenqlve/patterns/errors"
	"github.com/xuenqlve/patterns/log"
)

func TestLoggingTagsOwner(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)

	u := NewUser("Jon")
	assert.Equal(t, "Hello, Jon", u.Greet())
	assert.Contains(t, buf.String(), "LOG - User: User object 'Jon' created.")
	assert.Contains(t, buf.String(), "LOG - User: Greeting user 'Jon'")
}

func TestRepr(t *testing.T) {
	p := NewProduct("Super Widget", 9.99)
	assert.Equal(t, "<Product(name='Super Widget', price=9.99)>", p.String())
	assert.Equal(t, "<User(name='Jon')>", Repr(User{Name: "Jon"}))

	type plain struct {
		ID     int
		hidden string
		Skip   string `json:"-"`
	}
	assert.Equal(t, "<plain(id=3)>", Repr(plain{ID: 3, hidden: "x", Skip: "y"}))
	assert.Equal(t, "<nil>", Repr((*Product)(nil)))
	assert.Equal(t, "<42>", Repr(42))
}

func TestSerializers(t *testing.T) {
	p := NewProduct("Super Widget", 9.99)

	tests := []struct {
		format string
		want   string
	}{
		{format: FormatJSON, want: `{"name":"Super Widget","price":9.99}`},
		{format: FormatYAML, want: "name: Super Widget\nprice: 9.99\n"},
		{format: FormatTOML, want: "name = \"Super Widget\"\nprice = 9.99\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := Marshal(p, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Marshal(p, "xml")
	assert.True(t, errors.Is(err, errors.ErrUnknownKind))

	js, err := p.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Super Widget","price":9.99}`, js)
}

func TestDemo(t *testing.T) {
	log.SetOutput(&bytes.Buffer{})
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	assert.Contains(t, buf.String(), "Greet method returned: \"Hello, Jon\"")
	assert.Contains(t, buf.String(), "JSON representation: {\"name\":\"Super Widget\",\"price\":9.99}")
}
