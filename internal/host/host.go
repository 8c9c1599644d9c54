// Package host defines the boundary between the review engine and the game
// it narrates. The engine only ever sees read-only snapshots (Handle) and
// hands mutations back as opaque Command values for a Dispatcher to run.
package host

// Command is an opaque action token. Section entries and surface elements
// carry one; activating them returns the token to the caller instead of
// executing anything inside the navigation core.
type Command struct {
	Verb   string
	Target string
	Value  int
}

// IsZero reports whether the command carries no action.
func (c Command) IsZero() bool {
	return c.Verb == ""
}

// Command verbs understood by the dispatcher.
const (
	VerbFleetDock        = "fleet:dock"
	VerbFleetIntercept   = "fleet:intercept"
	VerbCouncilorRecruit = "councilor:recruit"
	VerbCouncilorMission = "councilor:mission"
	VerbResearchSlot     = "research:slot"
	VerbPrioritySet      = "priority:set"
	VerbUIClick          = "ui:click"
	VerbUIToggle         = "ui:toggle"
	VerbUIHover          = "ui:hover"
	VerbTimePause        = "time:pause"
	VerbTimeSpeed        = "time:speed"
)

// Dispatcher executes commands against the host game. Implementations
// return a short status line suitable for speech output, or an error whose
// message names the specific reason the host rejected the action.
type Dispatcher interface {
	Execute(cmd Command) (string, error)
}

// FleetEntry describes one fleet visible to the player.
type FleetEntry struct {
	ID      string
	Name    string
	Faction string
	System  string
	Mission string
	DeltaV  float64
	Ships   []string
}

// CouncilorEntry describes a councilor or recruitable candidate.
type CouncilorEntry struct {
	ID         string
	Name       string
	Role       string
	Faction    string
	Location   string
	Mission    string
	Persuasion int
	Candidate  bool
	Missions   []string
	Cost       float64
}

// NationEntry describes one nation row.
type NationEntry struct {
	ID            string
	Name          string
	Controller    string
	ControlPoints int
	Unrest        float64
	GDP           float64
	Armies        int
	Priorities    []PriorityRow
}

// HabEntry describes a station or base referenced from ledger lines.
type HabEntry struct {
	ID       string
	Name     string
	Body     string
	Faction  string
	Tier     int
	Modules  []string
	Produces map[string]float64
}

// ResourceLine is one row of the faction ledger.
type ResourceLine struct {
	Name   string
	Stock  float64
	Income float64
}

// ResearchEntry describes one research project.
type ResearchEntry struct {
	ID       string
	Name     string
	Category string
	Progress float64
	Slot     int
}

// PriorityRow is one row of a nation's priority matrix.
type PriorityRow struct {
	ID     string
	Name   string
	Weight int
}

// SurfaceElement is one interactive element on the live visual surface.
type SurfaceElement struct {
	ID        string
	Label     string
	Kind      string
	Container string
	X, Y      int
	Command   Command
}

// SurfaceSnapshot captures the visual surface the slot cursor walks. ID
// changes whenever the host swaps the active surface.
type SurfaceSnapshot struct {
	ID       string
	Elements []SurfaceElement
}

// Handle is the read-only view of host state passed into every navigation
// operation. It is rebuilt from the data stores before each use, so screens
// stay testable without a live game behind them.
type Handle struct {
	Faction    string
	Funds      float64
	Fleets     []FleetEntry
	Councilors []CouncilorEntry
	Nations    []NationEntry
	Habs       []HabEntry
	Resources  []ResourceLine
	Research   []ResearchEntry
	Surface    SurfaceSnapshot
	Speed      int
	Paused     bool
}

// FindHab resolves a hab by ID. Used when a ledger entry drills into the
// hab that produced it.
func (h Handle) FindHab(id string) (HabEntry, bool) {
	for _, hab := range h.Habs {
		if hab.ID == id {
			return hab, true
		}
	}
	return HabEntry{}, false
}
