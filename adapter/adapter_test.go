package adapter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterForwardsToAdaptee(t *testing.T) {
	var buf bytes.Buffer
	NewPrinterAdapter(NewOldPrinter(&buf)).Request("Hello, World!")

	assert.Equal(t, "Adapter's 'request' method called...\nOldPrinter prints: Hello, World!\n", buf.String())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	assert.Equal(t, "Client making a request...\n"+
		"Adapter's 'request' method called...\n"+
		"OldPrinter prints: Hello, World!\n", buf.String())
}
