package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuenqlve/patterns/errors"
	"github.com/xuenqlve/patterns/event"
	"github.com/xuenqlve/patterns/log"
)

// Simulate runs every move against every agent in order. Executed moves are
// uploaded to bus as MoveExecuted events and unbound moves as ErrorEvents when
// bus is not nil.
func Simulate(w io.Writer, processor *InputProcessor, moves []Move, agents []*Agent, bus event.Subject) {
	for i, move := range moves {
		fmt.Fprintf(w, "\nStep %d: Processing move '%s'\n", i+1, move)
		cmd, ok := processor.HandleInput(move)
		if !ok {
			fmt.Fprintf(w, "Warning: No command found for move '%s'\n", move)
			if bus != nil {
				err := errors.Annotatef(errors.ErrUnknownKind, "no command bound to move %s", move)
				bus.Upload(event.ErrorEvent(move.String(), err))
			}
			continue
		}
		for _, agent := range agents {
			cmd.Execute(agent)
			agent.Debug()
			if bus != nil {
				pos := agent.Position()
				bus.Upload(event.Event{
					Type: event.MoveExecuted,
					Key:  move.String(),
					Value: map[string]any{
						"agent": agent.Name(),
						"x":     pos.X,
						"y":     pos.Y,
						"speed": agent.Speed(),
					},
				})
			}
		}
	}
}

func formatMoves(moves []Move) string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = "'" + m.String() + "'"
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func Demo(w io.Writer) error {
	fmt.Fprintln(w, "--- Setting up the simulation ---")
	moves := []Move{Walk, Right, Run, Up, Right, Down, Walk, Down, Left, Left}
	fmt.Fprintf(w, "Input sequence: %s\n\n", formatMoves(moves))

	agents := []*Agent{
		NewAgent(Point2{X: 0, Y: 0}, "Agent 1", w),
		NewAgent(Point2{X: 0, Y: 2}, "Agent 2", w),
		NewAgent(Point2{X: 3, Y: 0}, "Agent 3", w),
	}
	fmt.Fprintln(w, "\n--- Starting simulation ---")

	bus := event.NewManager()
	executed := 0
	if err := bus.Register(event.MoveExecuted, func(event.Event) { executed++ }); err != nil {
		return err
	}
	if err := bus.Register(event.ErrorRaised, func(e event.Event) {
		log.Warnf("move rejected. move=[%s] err=[%v]", e.Key, event.Err(e))
	}); err != nil {
		return err
	}

	Simulate(w, NewInputProcessor(), moves, agents, bus)

	fmt.Fprintf(w, "\n--- Simulation finished (%d commands executed) ---\n", executed)
	return nil
}
