package texture

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryReusesInstances(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(&buf)

	first, err := r.Get("diffuse.tga")
	require.NoError(t, err)
	second, err := r.Get("diffuse.tga")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 1, strings.Count(buf.String(), "Loading texture data for: diffuse.tga"))
	assert.Contains(t, buf.String(), "'diffuse.tga' found in cache. Re-using existing instance.")
}

func TestRegistryMissOutputOrder(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(&buf)
	_, err := r.Get("specular.tga")
	require.NoError(t, err)

	assert.Equal(t, "Requesting texture: 'specular.tga'\n"+
		"    -> 'specular.tga' not in cache. Creating new instance.\n"+
		"    -> Loading texture data for: specular.tga\n", buf.String())
}

func TestRegistryRejectsEmptyName(t *testing.T) {
	r := NewRegistry(nil)
	_, err := r.Get("")
	assert.Error(t, err)
	assert.Zero(t, r.Len())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "Loading texture data"))
	assert.True(t, strings.HasSuffix(out, "Number of instances created = 3\n"+
		"- diffuse.tga\n- specular.tga\n- new.tga\n"+
		"---------------------------\n\n"))
}
