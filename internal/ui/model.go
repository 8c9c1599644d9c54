package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/softwatch/astroreview/internal/backend"
	"github.com/softwatch/astroreview/internal/data/dispatcher"
	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/logging/events"
	"github.com/softwatch/astroreview/internal/review/grid"
	"github.com/softwatch/astroreview/internal/review/nav"
	"github.com/softwatch/astroreview/internal/screens"
	"github.com/softwatch/astroreview/internal/slot"
	"github.com/softwatch/astroreview/internal/speech"
	"github.com/softwatch/astroreview/internal/state"
	"github.com/softwatch/astroreview/internal/theme"
	"github.com/softwatch/astroreview/internal/ui/command"
)

// Mode is the active input layer. Keys route to the topmost active layer
// first: search form, then grid selection, then slot cursor, then review
// navigation, with time controls underneath everything.
type Mode int

const (
	ModeReview Mode = iota
	ModeGrid
	ModeSlot
	ModeSearch
)

const transcriptLimit = 200

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the review overlay.
type Model struct {
	nav        *nav.State
	mode       Mode
	grid       *grid.Model
	gridScreen string
	slot       *slot.Cursor
	search     textinput.Model

	transcript *speech.Transcript

	width  int
	height int

	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string

	fleets  state.FleetStore
	council state.CouncilStore
	nations state.NationStore
	economy state.EconomyStore
	surface state.SurfaceStore

	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	keys       keyMap

	showTranscript bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the review engine to a host dispatcher and an optional
// backend watcher.
func NewModel(exec host.Dispatcher, watcher *backend.Watcher, width, height int, showTranscript bool) *Model {
	fleets := state.NewFleetStore()
	council := state.NewCouncilStore()
	nations := state.NewNationStore()
	economy := state.NewEconomyStore()
	surface := state.NewSurfaceStore()

	search := textinput.New()
	search.Placeholder = "jump to item"
	search.Prompt = "/ "
	search.CharLimit = 64

	m := &Model{
		nav:            nav.NewState(screens.All()),
		slot:           slot.NewCursor(),
		search:         search,
		transcript:     speech.NewTranscript(transcriptLimit),
		width:          width,
		height:         height,
		backend:        watcher,
		backendState:   map[backend.Kind]error{},
		fleets:         fleets,
		council:        council,
		nations:        nations,
		economy:        economy,
		surface:        surface,
		dispatcher:     dispatcher.New(fleets, council, nations, economy, surface),
		bus:            command.New(exec),
		keys:           defaultKeyMap(),
		showTranscript: showTranscript,
	}
	m.registerHandlers()
	return m
}

// Sink exposes the speech transcript so tests and the host bridge can read
// what was spoken.
func (m *Model) Sink() *speech.Transcript {
	return m.transcript
}

// Nav exposes the navigation state for tests.
func (m *Model) Nav() *nav.State {
	return m.nav
}

// reviewContext assembles the read-only handle every navigation operation
// receives. Rebuilt from the stores on each use so screens never hold a
// reference into live host data.
func (m *Model) reviewContext() host.Handle {
	return host.Handle{
		Faction:    m.fleets.Faction(),
		Funds:      m.economy.Funds(),
		Fleets:     m.fleets.Entries(),
		Councilors: m.council.Entries(),
		Nations:    m.nations.Entries(),
		Habs:       m.economy.Habs(),
		Resources:  m.economy.Resources(),
		Research:   m.economy.Research(),
		Surface:    m.surface.Snapshot(),
		Speed:      m.surface.Speed(),
		Paused:     m.surface.Paused(),
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.say("Review mode. Up and down to browse screens, enter to open.", true)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	}
	m.transcript.Flush()
	return m, cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(command.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):      m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):       m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// say queues an utterance. interrupt cuts off anything still pending.
func (m *Model) say(text string, interrupt bool) {
	if text == "" {
		return
	}
	m.transcript.Speak(text, interrupt)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	return nil
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.ActionResult)
	if !ok {
		return nil
	}
	if res.Err != nil {
		// The host names the specific reason; speak it verbatim.
		m.say(res.Err.Error(), true)
		return nil
	}
	info := res.Info
	if info == "" {
		info = res.Label + " done"
	}
	m.say(info, true)
	// Host state changed: drop cached sections and rebuild the current
	// screen so the next read reflects the action.
	m.nav.InvalidateSections()
	m.nav.RefreshCurrent(m.reviewContext())
	return nil
}

// dispatch queues a command for execution, announcing the label first so
// slow hosts still give immediate feedback.
func (m *Model) dispatch(cmd host.Command, label string) tea.Cmd {
	if cmd.IsZero() {
		return nil
	}
	m.say(label, false)
	return m.bus.Execute(command.Request{Command: cmd, Label: label})
}

// enterGrid switches to grid-selection mode.
func (m *Model) enterGrid(g *grid.Model, screenName string) {
	m.grid = g
	m.gridScreen = screenName
	m.mode = ModeGrid
}

// exitGrid returns to review navigation.
func (m *Model) exitGrid() {
	events.Nav.GridExit(m.gridScreen)
	m.grid = nil
	m.gridScreen = ""
	m.mode = ModeReview
}

// toggleSlotMode flips between the review cursor and the live-surface
// cursor, announcing the result.
func (m *Model) toggleSlotMode() {
	if m.mode == ModeSlot {
		m.mode = ModeReview
		events.Slot.Toggle(false)
		m.say("Review cursor", true)
		return
	}
	if m.mode != ModeReview {
		return
	}
	m.slot.Sync(m.surface.Snapshot())
	m.mode = ModeSlot
	events.Slot.Toggle(true)
	if m.slot.Empty() {
		m.say("Screen cursor, no controls", true)
		return
	}
	m.say("Screen cursor. "+m.slot.Position(), true)
}
