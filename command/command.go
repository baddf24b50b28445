// Package command turns agent moves into Command values. An InputProcessor
// maps each Move to the command that carries it out, and Simulate executes a
// move sequence against a group of agents.
package command

// Command executes one action on a receiver.
type Command interface {
	Execute(agent *Agent)
}

type (
	RunCommand   struct{}
	WalkCommand  struct{}
	LeftCommand  struct{}
	RightCommand struct{}
	UpCommand    struct{}
	DownCommand  struct{}
)

func (RunCommand) Execute(agent *Agent) { agent.Run() }

func (WalkCommand) Execute(agent *Agent) { agent.Walk() }

func (LeftCommand) Execute(agent *Agent) { agent.Left() }

func (RightCommand) Execute(agent *Agent) { agent.Right() }

func (UpCommand) Execute(agent *Agent) { agent.Up() }

func (DownCommand) Execute(agent *Agent) { agent.Down() }

// CommandFunc lets an ordinary function act as a Command.
type CommandFunc func(agent *Agent)

func (f CommandFunc) Execute(agent *Agent) { f(agent) }

type Move int

const (
	Run Move = iota + 1
	Walk
	Up
	Down
	Left
	Right
)

var moveNames = map[Move]string{
	Run:   "RUN",
	Walk:  "WALK",
	Up:    "UP",
	Down:  "DOWN",
	Left:  "LEFT",
	Right: "RIGHT",
}

func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// InputProcessor is the invoker. It owns the move to command bindings.
type InputProcessor struct {
	commands map[Move]Command
}

func NewInputProcessor() *InputProcessor {
	return &InputProcessor{
		commands: map[Move]Command{
			Run:   RunCommand{},
			Walk:  WalkCommand{},
			Left:  LeftCommand{},
			Right: RightCommand{},
			Up:    UpCommand{},
			Down:  DownCommand{},
		},
	}
}

// Bind replaces the command for m; a nil command removes the binding.
func (p *InputProcessor) Bind(m Move, cmd Command) {
	if cmd == nil {
		delete(p.commands, m)
		return
	}
	p.commands[m] = cmd
}

func (p *InputProcessor) HandleInput(m Move) (Command, bool) {
	cmd, ok := p.commands[m]
	return cmd, ok
}
