package main

import (
	"io"
	"strings"

	"github.com/xuenqlve/patterns/adapter"
	"github.com/xuenqlve/patterns/command"
	"github.com/xuenqlve/patterns/decorator"
	"github.com/xuenqlve/patterns/errors"
	"github.com/xuenqlve/patterns/factory"
	"github.com/xuenqlve/patterns/mixin"
	"github.com/xuenqlve/patterns/monostate"
	"github.com/xuenqlve/patterns/observer"
	"github.com/xuenqlve/patterns/shape"
	"github.com/xuenqlve/patterns/singleton"
	"github.com/xuenqlve/patterns/strategy"
	"github.com/xuenqlve/patterns/texture"
)

type demo struct {
	name    string
	aliases []string
	title   string
	run     func(io.Writer) error
}

var demos = []demo{
	{name: "abstract", aliases: []string{"shape", "abc"}, title: "Abstract base class", run: shape.Demo},
	{name: "adapter", title: "Adapter", run: adapter.Demo},
	{name: "command", title: "Command", run: command.Demo},
	{name: "decorator", title: "Decorator", run: decorator.Demo},
	{name: "lazy", aliases: []string{"texture"}, title: "Lazy initialization", run: texture.Demo},
	{name: "mixin", title: "Mixin", run: mixin.Demo},
	{name: "monostate", aliases: []string{"borg"}, title: "Monostate", run: monostate.Demo},
	{name: "observer", title: "Observer", run: observer.Demo},
	{name: "factory", title: "Simple factory", run: factory.Demo},
	{name: "singleton", title: "Singleton", run: singleton.Demo},
	{name: "strategy", title: "Strategy", run: strategy.Demo},
}

func lookupDemo(name string) (demo, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range demos {
		if d.name == name {
			return d, nil
		}
		for _, a := range d.aliases {
			if a == name {
				return d, nil
			}
		}
	}
	return demo{}, errors.Annotatef(errors.ErrUnknownKind, "unknown demo %q", name)
}

// selectDemos resolves names in the given order. No names selects every demo.
func selectDemos(names []string) ([]demo, error) {
	if len(names) == 0 {
		return demos, nil
	}
	selected := make([]demo, 0, len(names))
	for _, name := range names {
		d, err := lookupDemo(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, d)
	}
	return selected, nil
}
