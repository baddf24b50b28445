package command

import (
	"fmt"
	"io"
)

const (
	walkSpeed = 1.0
	runSpeed  = 2.0
)

type Point2 struct {
	X float64
	Y float64
}

// Agent is the receiver: it knows how to carry out every move.
type Agent struct {
	name  string
	pos   Point2
	speed float64
	out   io.Writer
}

func NewAgent(pos Point2, name string, w io.Writer) *Agent {
	if w == nil {
		w = io.Discard
	}
	fmt.Fprintf(w, "%s created at position (%.1f, %.1f)\n", name, pos.X, pos.Y)
	return &Agent{name: name, pos: pos, speed: walkSpeed, out: w}
}

func (a *Agent) Name() string { return a.name }

func (a *Agent) Position() Point2 { return a.pos }

func (a *Agent) Speed() float64 { return a.speed }

func (a *Agent) Run() {
	fmt.Fprintf(a.out, "%s started running.\n", a.name)
	a.speed = runSpeed
}

func (a *Agent) Walk() {
	fmt.Fprintf(a.out, "%s started walking.\n", a.name)
	a.speed = walkSpeed
}

func (a *Agent) Up() { a.pos.Y += a.speed }

func (a *Agent) Down() { a.pos.Y -= a.speed }

func (a *Agent) Left() { a.pos.X -= a.speed }

func (a *Agent) Right() { a.pos.X += a.speed }

func (a *Agent) Debug() {
	fmt.Fprintf(a.out, "DEBUG - %s is at (%.1f, %.1f) with speed %.1f\n", a.name, a.pos.X, a.pos.Y, a.speed)
}
