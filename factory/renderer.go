package factory

import (
	"fmt"
	"io"
)

// Renderer is the product interface every catalog entry satisfies.
type Renderer interface {
	LoadScene(filename string) bool
	SetViewportSize(width, height int)
	SetCameraPos(x, y, z float64)
	SetLookAt(x, y, z float64)
	Render()
}

var (
	_ Renderer = (*prefixRenderer)(nil)
)

// prefixRenderer implements both products; they differ only in the API name
// they report.
type prefixRenderer struct {
	api string
	out io.Writer
}

func (r *prefixRenderer) LoadScene(filename string) bool {
	fmt.Fprintf(r.out, "%s: Loading scene from %s\n", r.api, filename)
	return true
}

func (r *prefixRenderer) SetViewportSize(width, height int) {
	fmt.Fprintf(r.out, "%s: Setting viewport to %dx%d\n", r.api, width, height)
}

func (r *prefixRenderer) SetCameraPos(x, y, z float64) {
	fmt.Fprintf(r.out, "%s: Setting camera position to (%g, %g, %g)\n", r.api, x, y, z)
}

func (r *prefixRenderer) SetLookAt(x, y, z float64) {
	fmt.Fprintf(r.out, "%s: Setting camera look-at to (%g, %g, %g)\n", r.api, x, y, z)
}

func (r *prefixRenderer) Render() {
	fmt.Fprintf(r.out, "%s: Rendering scene... Done.\n", r.api)
}

type OpenGLRenderer struct{ prefixRenderer }

type DirectXRenderer struct{ prefixRenderer }

func NewOpenGL(w io.Writer) Renderer {
	return &OpenGLRenderer{prefixRenderer{api: "OpenGL", out: w}}
}

func NewDirectX(w io.Writer) Renderer {
	return &DirectXRenderer{prefixRenderer{api: "DirectX", out: w}}
}
