package decorator

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUppercase(t *testing.T) {
	assert.Equal(t, "HELLO, WORLD", LoudGreet("World"))
	assert.Equal(t, "Hello, World", Greet("World"))

	itoa := Uppercase(func(n int) string { return "n=" + strconv.Itoa(n) })
	assert.Equal(t, "N=7", itoa(7))
}

func TestWrapOrder(t *testing.T) {
	var calls []string
	double := Wrap(
		func(n int) int { calls = append(calls, "fn"); return n * 2 },
		func(int) { calls = append(calls, "before") },
		func(_ int, r int) { calls = append(calls, "after:"+strconv.Itoa(r)) },
	)

	assert.Equal(t, 8, double(4))
	assert.Equal(t, []string{"before", "fn", "after:8"}, calls)

	plain := Wrap[int, int](func(n int) int { return n + 1 }, nil, nil)
	assert.Equal(t, 2, plain(1))
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	assert.Equal(t, "HELLO, WORLD\n"+
		"calling greet(\"Gopher\")\n"+
		"greet returned \"HELLO, GOPHER\"\n", buf.String())
}
