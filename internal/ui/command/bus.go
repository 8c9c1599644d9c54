// Package command runs host commands off the UI goroutine and reports
// their outcome back as Bubble Tea messages.
package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/logging/events"
)

// Request is one activation: the opaque command token plus the spoken label
// of whatever produced it.
type Request struct {
	Command host.Command
	Label   string
}

// ActionResult reports an executed command. Info is the host's status line;
// Err carries the host's specific rejection reason.
type ActionResult struct {
	Command host.Command
	Label   string
	Info    string
	Err     error
}

// Bus executes command tokens through the host dispatcher.
type Bus struct {
	dispatcher host.Dispatcher
}

// New builds a bus over the given dispatcher.
func New(d host.Dispatcher) *Bus {
	return &Bus{dispatcher: d}
}

// Execute wraps the request into a Bubble Tea command, emitting trace logs
// around the dispatch.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.Command.Verb, req.Command.Target, req.Label)
	return func() tea.Msg {
		if b.dispatcher == nil || req.Command.IsZero() {
			events.Command.Skip(req.Label)
			return nil
		}
		info, err := b.dispatcher.Execute(req.Command)
		if err != nil {
			events.Action.Error(err)
		} else {
			events.Action.Success(info)
		}
		events.Command.Result(req.Command.Verb, req.Label, info)
		return ActionResult{Command: req.Command, Label: req.Label, Info: info, Err: err}
	}
}
