package factory

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuenqlve/patterns/errors"
)

func TestNewKnownKinds(t *testing.T) {
	tests := []struct {
		kind string
		want any
	}{
		{kind: "OpenGL", want: &OpenGLRenderer{}},
		{kind: "DirectX", want: &DirectXRenderer{}},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			var buf bytes.Buffer
			r, err := New(tt.kind, &buf)
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)

			assert.True(t, r.LoadScene("scene.obj"))
			r.SetViewportSize(800, 600)
			r.SetLookAt(0, 0, 0)
			assert.Equal(t, tt.kind+": Loading scene from scene.obj\n"+
				tt.kind+": Setting viewport to 800x600\n"+
				tt.kind+": Setting camera look-at to (0, 0, 0)\n", buf.String())
		})
	}
}

func TestNewUnknownKind(t *testing.T) {
	r, err := New("WebGPU", nil)
	assert.Nil(t, r)
	require.EqualError(t, err, "Unknown renderer kind: WebGPU")
	assert.True(t, errors.Is(err, errors.ErrUnknownKind))
}

func TestRegister(t *testing.T) {
	require.Error(t, Register("", NewOpenGL))
	require.Error(t, Register("Vulkan", nil))

	require.NoError(t, Register("Vulkan", func(w io.Writer) Renderer {
		return &prefixRenderer{api: "Vulkan", out: w}
	}))
	assert.Equal(t, []string{"DirectX", "OpenGL", "Vulkan"}, Kinds())

	var buf bytes.Buffer
	r, err := New("Vulkan", &buf)
	require.NoError(t, err)
	r.Render()
	assert.Equal(t, "Vulkan: Rendering scene... Done.\n", buf.String())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	assert.Contains(t, buf.String(), "OpenGL: Setting camera position to (0, 0, 5)\n")
	assert.Contains(t, buf.String(), "DirectX: Loading scene from another_scene.fbx\n")
	assert.Contains(t, buf.String(), "Caught expected error: Unknown renderer kind: WebGPU\n")
}
