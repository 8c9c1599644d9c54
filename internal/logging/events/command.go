package events

import "github.com/softwatch/astroreview/internal/logging"

type CommandTracer struct{}

type ActionTracer struct{}

var (
	Command = CommandTracer{}
	Action  = ActionTracer{}
)

func (CommandTracer) Queue(verb, target, label string) {
	logging.Trace("command.queue", map[string]interface{}{
		"verb":   verb,
		"target": target,
		"label":  label,
	})
}

func (CommandTracer) Skip(label string) {
	logging.Trace("command.skip", map[string]interface{}{"label": label})
}

func (CommandTracer) Result(verb, label, info string) {
	logging.Trace("command.result", map[string]interface{}{
		"verb":  verb,
		"label": label,
		"info":  info,
	})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}
