package event

type Type int

const (
	MoveExecuted Type = iota + 1
	ErrorRaised
)

var typeNames = map[Type]string{
	MoveExecuted: "move_executed",
	ErrorRaised:  "error_raised",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

type Event struct {
	Type  Type
	Key   string
	Value map[string]any
}

type ObserverFunc func(e Event)

// Subject is what publishers depend on; Manager is the implementation.
type Subject interface {
	Register(et Type, observer ObserverFunc) error
	Unregister(et Type, observer ObserverFunc) error
	Upload(event Event)
}

var _ Subject = (*Manager)(nil)
