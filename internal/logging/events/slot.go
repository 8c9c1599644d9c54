package events

import "github.com/softwatch/astroreview/internal/logging"

type SlotTracer struct{}

var Slot = SlotTracer{}

func (SlotTracer) Toggle(enabled bool) {
	logging.Trace("slot.toggle", map[string]interface{}{"enabled": enabled})
}

func (SlotTracer) Discover(surface string, containers, elements int) {
	logging.Trace("slot.discover", map[string]interface{}{
		"surface":    surface,
		"containers": containers,
		"elements":   elements,
	})
}

func (SlotTracer) Focus(id string) {
	logging.Trace("slot.focus", map[string]interface{}{"element": id})
}

func (SlotTracer) Group(name string) {
	logging.Trace("slot.group", map[string]interface{}{"container": name})
}

func (SlotTracer) Activate(id, verb string) {
	logging.Trace("slot.activate", map[string]interface{}{"element": id, "verb": verb})
}
