package factory

import (
	"fmt"
	"io"

	"github.com/xuenqlve/patterns/errors"
)

type scene struct {
	label   string
	kind    string
	file    string
	x, y, z float64
}

func Demo(w io.Writer) error {
	scenes := []scene{
		{label: "an OpenGL", kind: "OpenGL", file: "my_scene.obj", x: 0, y: 0, z: 5},
		{label: "a DirectX", kind: "DirectX", file: "another_scene.fbx", x: 10, y: 5, z: 3},
	}
	for i, s := range scenes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "--- Using the factory to get %s renderer ---\n", s.label)
		renderer, err := New(s.kind, w)
		if err != nil {
			return err
		}
		renderer.LoadScene(s.file)
		renderer.SetCameraPos(s.x, s.y, s.z)
		renderer.Render()
	}

	fmt.Fprintln(w, "\n--- Trying to get an unsupported renderer ---")
	if _, err := New("WebGPU", w); errors.Is(err, errors.ErrUnknownKind) {
		fmt.Fprintf(w, "Caught expected error: %v\n", err)
	}
	return nil
}
