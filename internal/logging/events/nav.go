package events

import "github.com/softwatch/astroreview/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Cursor(level string, index int) {
	logging.Trace("nav.cursor", map[string]interface{}{"level": level, "index": index})
}

func (NavTracer) Screen(name string) {
	logging.Trace("nav.screen", map[string]interface{}{"screen": name})
}

func (NavTracer) Drill(screen, level, outcome string) {
	logging.Trace("nav.drill", map[string]interface{}{
		"screen":  screen,
		"level":   level,
		"outcome": outcome,
	})
}

func (NavTracer) BackOut(level string) {
	logging.Trace("nav.backout", map[string]interface{}{"level": level})
}

func (NavTracer) LetterJump(screen string, letter string, index int) {
	logging.Trace("nav.letter-jump", map[string]interface{}{
		"screen": screen,
		"letter": letter,
		"index":  index,
	})
}

func (NavTracer) ViewToggle(screen, status string) {
	logging.Trace("nav.view-toggle", map[string]interface{}{"screen": screen, "status": status})
}

func (NavTracer) FactionCycle(screen, status string) {
	logging.Trace("nav.faction-cycle", map[string]interface{}{"screen": screen, "status": status})
}

func (NavTracer) GridEnter(screen string) {
	logging.Trace("nav.grid-enter", map[string]interface{}{"screen": screen})
}

func (NavTracer) GridExit(screen string) {
	logging.Trace("nav.grid-exit", map[string]interface{}{"screen": screen})
}
