// Package sim is the stand-in host: a small in-memory 4X game exposing the
// same fetch-and-dispatch surface a live game integration would. The
// review engine never imports this package directly; it arrives through
// the backend watcher and the command dispatcher.
package sim

import (
	"fmt"
	"sync"

	"github.com/softwatch/astroreview/internal/host"
)

// FleetSnapshot is one poll of the fleet roster.
type FleetSnapshot struct {
	Faction string
	Fleets  []host.FleetEntry
}

// CouncilSnapshot is one poll of councilors and candidates.
type CouncilSnapshot struct {
	Councilors []host.CouncilorEntry
}

// NationSnapshot is one poll of the nation table.
type NationSnapshot struct {
	Nations []host.NationEntry
}

// EconomySnapshot groups the slower-moving faction data: habs, the
// resource ledger, research, and funds.
type EconomySnapshot struct {
	Funds     float64
	Habs      []host.HabEntry
	Resources []host.ResourceLine
	Research  []host.ResearchEntry
}

// SurfaceSnapshot is one poll of the live UI surface.
type SurfaceSnapshot struct {
	Surface host.SurfaceSnapshot
	Speed   int
	Paused  bool
}

// Game holds the simulated host state. All access goes through the mutex:
// the backend watcher polls from its own goroutines while the UI thread
// dispatches commands.
type Game struct {
	mu sync.Mutex

	faction    string
	funds      float64
	speed      int
	paused     bool
	turn       int
	fleets     []host.FleetEntry
	councilors []host.CouncilorEntry
	nations    []host.NationEntry
	habs       []host.HabEntry
	resources  []host.ResourceLine
	research   []host.ResearchEntry
	surface    host.SurfaceSnapshot
}

// NewGame seeds a playable world.
func NewGame() *Game {
	g := &Game{
		faction: "The Meridian Compact",
		funds:   120,
		speed:   1,
		turn:    1,
	}
	g.fleets = []host.FleetEntry{
		{ID: "fl-kestrel", Name: "Task Force Kestrel", Faction: g.faction, System: "Earth orbit", Mission: "Patrol", DeltaV: 14.2, Ships: []string{"Kestrel", "Sparrowhawk", "Merlin"}},
		{ID: "fl-aurora", Name: "Aurora Convoy", Faction: g.faction, System: "Luna transfer", Mission: "Resupply", DeltaV: 6.8, Ships: []string{"Aurora", "Borealis"}},
		{ID: "fl-vigil", Name: "Vigil Squadron", Faction: "The Ashen Accord", System: "Mars orbit", Mission: "Blockade", DeltaV: 11.5, Ships: []string{"Vigil", "Sentinel", "Warden", "Bulwark"}},
		{ID: "fl-zenith", Name: "Zenith Wing", Faction: "The Ashen Accord", System: "Ceres", Mission: "Survey", DeltaV: 3.1, Ships: []string{"Zenith"}},
	}
	g.councilors = []host.CouncilorEntry{
		{ID: "co-ilse", Name: "Ilse Varga", Role: "Diplomat", Faction: g.faction, Location: "Geneva", Mission: "Improve relations", Persuasion: 18, Missions: []string{"Improve relations", "Lobby government", "Go to ground"}},
		{ID: "co-dmitri", Name: "Dmitri Okafor", Role: "Spy", Faction: g.faction, Location: "Jakarta", Mission: "", Persuasion: 11, Missions: []string{"Investigate councilor", "Steal project", "Go to ground"}},
		{ID: "co-yuna", Name: "Yuna Castellanos", Role: "Scientist", Faction: "", Location: "São Paulo", Persuasion: 9, Candidate: true, Cost: 40, Missions: nil},
		{ID: "co-arman", Name: "Arman Diallo", Role: "Executive", Faction: "", Location: "Lagos", Persuasion: 14, Candidate: true, Cost: 65, Missions: nil},
	}
	g.nations = []host.NationEntry{
		{ID: "na-caspia", Name: "Caspian Union", Controller: g.faction, ControlPoints: 3, Unrest: 2.1, GDP: 1840, Armies: 2, Priorities: []host.PriorityRow{
			{ID: "pr-caspia-economy", Name: "Economy", Weight: 3},
			{ID: "pr-caspia-welfare", Name: "Welfare", Weight: 1},
			{ID: "pr-caspia-boost", Name: "Boost", Weight: 2},
			{ID: "pr-caspia-military", Name: "Military", Weight: 0},
		}},
		{ID: "na-andara", Name: "Andara Federation", Controller: g.faction, ControlPoints: 1, Unrest: 4.7, GDP: 920, Armies: 1, Priorities: []host.PriorityRow{
			{ID: "pr-andara-economy", Name: "Economy", Weight: 2},
			{ID: "pr-andara-knowledge", Name: "Knowledge", Weight: 2},
			{ID: "pr-andara-unity", Name: "Unity", Weight: 1},
		}},
		{ID: "na-veyron", Name: "Veyron Republic", Controller: "The Ashen Accord", ControlPoints: 2, Unrest: 1.3, GDP: 2630, Armies: 4},
	}
	g.habs = []host.HabEntry{
		{ID: "hab-copernicus", Name: "Copernicus Yard", Body: "Luna", Faction: g.faction, Tier: 2, Modules: []string{"Shipyard", "Solar array", "Crew quarters"}, Produces: map[string]float64{"Volatiles": 2.5, "Metals": 1.2}},
		{ID: "hab-halcyon", Name: "Halcyon Ring", Body: "Earth LEO", Faction: g.faction, Tier: 1, Modules: []string{"Research lab", "Docking bay"}, Produces: map[string]float64{"Research": 4.0}},
		{ID: "hab-erebus", Name: "Erebus Mine", Body: "Ceres", Faction: g.faction, Tier: 1, Modules: []string{"Mining rig", "Mass driver"}, Produces: map[string]float64{"Metals": 3.8, "Volatiles": 0.6}},
	}
	g.resources = []host.ResourceLine{
		{Name: "Money", Stock: g.funds, Income: 8.5},
		{Name: "Metals", Stock: 310, Income: 5.0},
		{Name: "Volatiles", Stock: 84, Income: 3.1},
		{Name: "Research", Stock: 0, Income: 4.0},
	}
	g.research = []host.ResearchEntry{
		{ID: "re-fusion", Name: "Pulsed Fusion Drives", Category: "Engineering", Progress: 0.42, Slot: 0},
		{ID: "re-arcology", Name: "Orbital Arcologies", Category: "Society", Progress: 0.10, Slot: 1},
		{ID: "re-lasers", Name: "Phased Laser Batteries", Category: "Military", Progress: 0, Slot: -1},
		{ID: "re-biotech", Name: "Closed-Loop Biomes", Category: "Life science", Progress: 0, Slot: -1},
	}
	g.rebuildSurface()
	return g
}

// Faction returns the player faction name.
func (g *Game) Faction() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.faction
}

// FetchFleets returns a copy of the current fleet roster.
func (g *Game) FetchFleets() (FleetSnapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return FleetSnapshot{Faction: g.faction, Fleets: cloneFleets(g.fleets)}, nil
}

// FetchCouncil returns a copy of councilors and open candidates.
func (g *Game) FetchCouncil() (CouncilSnapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return CouncilSnapshot{Councilors: cloneCouncilors(g.councilors)}, nil
}

// FetchNations returns a copy of the nation table.
func (g *Game) FetchNations() (NationSnapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return NationSnapshot{Nations: cloneNations(g.nations)}, nil
}

// FetchEconomy returns a copy of habs, ledger, and research.
func (g *Game) FetchEconomy() (EconomySnapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return EconomySnapshot{
		Funds:     g.funds,
		Habs:      cloneHabs(g.habs),
		Resources: append([]host.ResourceLine(nil), g.resources...),
		Research:  append([]host.ResearchEntry(nil), g.research...),
	}, nil
}

// FetchSurface returns a copy of the live UI surface and time state.
func (g *Game) FetchSurface() (SurfaceSnapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return SurfaceSnapshot{
		Surface: host.SurfaceSnapshot{ID: g.surface.ID, Elements: append([]host.SurfaceElement(nil), g.surface.Elements...)},
		Speed:   g.speed,
		Paused:  g.paused,
	}, nil
}

// Execute runs a command against the game. Rejections carry the specific
// reason so it can be spoken verbatim.
func (g *Game) Execute(cmd host.Command) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch cmd.Verb {
	case host.VerbCouncilorRecruit:
		return g.recruit(cmd.Target)
	case host.VerbCouncilorMission:
		return g.assignMission(cmd.Target)
	case host.VerbFleetDock:
		return g.dockFleet(cmd.Target)
	case host.VerbFleetIntercept:
		return g.interceptFleet(cmd.Target)
	case host.VerbResearchSlot:
		return g.slotResearch(cmd.Target, cmd.Value)
	case host.VerbPrioritySet:
		return g.setPriority(cmd.Target, cmd.Value)
	case host.VerbTimePause:
		g.paused = !g.paused
		if g.paused {
			return "Paused", nil
		}
		return fmt.Sprintf("Running at speed %d", g.speed), nil
	case host.VerbTimeSpeed:
		if cmd.Value < 1 || cmd.Value > 5 {
			return "", fmt.Errorf("speed %d out of range", cmd.Value)
		}
		g.speed = cmd.Value
		g.paused = false
		return fmt.Sprintf("Speed %d", g.speed), nil
	case host.VerbUIClick, host.VerbUIToggle, host.VerbUIHover:
		return g.surfaceEvent(cmd)
	default:
		return "", fmt.Errorf("unknown command %q", cmd.Verb)
	}
}

func (g *Game) recruit(id string) (string, error) {
	for i, c := range g.councilors {
		if c.ID != id {
			continue
		}
		if !c.Candidate {
			return "", fmt.Errorf("%s is already on the council", c.Name)
		}
		if g.funds < c.Cost {
			return "", fmt.Errorf("cannot afford %s, need %.0f money", c.Name, c.Cost)
		}
		g.funds -= c.Cost
		g.councilors[i].Candidate = false
		g.councilors[i].Faction = g.faction
		g.councilors[i].Missions = []string{"Go to ground"}
		g.syncLedgerFunds()
		return fmt.Sprintf("Recruited %s", c.Name), nil
	}
	return "", fmt.Errorf("no candidate %q", id)
}

// assignMission targets take the form councilorID/mission.
func (g *Game) assignMission(target string) (string, error) {
	id, mission := splitTarget(target)
	for i, c := range g.councilors {
		if c.ID != id {
			continue
		}
		if c.Candidate {
			return "", fmt.Errorf("%s has not been recruited", c.Name)
		}
		for _, m := range c.Missions {
			if m == mission {
				g.councilors[i].Mission = mission
				return fmt.Sprintf("%s assigned to %s", c.Name, mission), nil
			}
		}
		return "", fmt.Errorf("%s cannot run mission %q", c.Name, mission)
	}
	return "", fmt.Errorf("no councilor %q", id)
}

func (g *Game) dockFleet(id string) (string, error) {
	for i, f := range g.fleets {
		if f.ID != id {
			continue
		}
		if f.Faction != g.faction {
			return "", fmt.Errorf("%s is not under your command", f.Name)
		}
		g.fleets[i].Mission = "Docked"
		return fmt.Sprintf("%s docking at nearest hab", f.Name), nil
	}
	return "", fmt.Errorf("no fleet %q", id)
}

func (g *Game) interceptFleet(id string) (string, error) {
	for i, f := range g.fleets {
		if f.ID != id {
			continue
		}
		if f.Faction != g.faction {
			return "", fmt.Errorf("%s is not under your command", f.Name)
		}
		if f.DeltaV < 5 {
			return "", fmt.Errorf("%s lacks delta-v for an intercept", f.Name)
		}
		g.fleets[i].Mission = "Intercept"
		return fmt.Sprintf("%s moving to intercept", f.Name), nil
	}
	return "", fmt.Errorf("no fleet %q", id)
}

func (g *Game) slotResearch(id string, slot int) (string, error) {
	if slot < 0 || slot > 2 {
		return "", fmt.Errorf("slot %d out of range", slot)
	}
	for i, r := range g.research {
		if r.ID != id {
			continue
		}
		for j, other := range g.research {
			if j != i && other.Slot == slot {
				g.research[j].Slot = -1
			}
		}
		g.research[i].Slot = slot
		return fmt.Sprintf("%s assigned to research slot %d", r.Name, slot+1), nil
	}
	return "", fmt.Errorf("no research project %q", id)
}

func (g *Game) setPriority(id string, weight int) (string, error) {
	for ni := range g.nations {
		for pi, row := range g.nations[ni].Priorities {
			if row.ID != id {
				continue
			}
			if g.nations[ni].Controller != g.faction {
				return "", fmt.Errorf("you do not control %s", g.nations[ni].Name)
			}
			if weight < 0 {
				return "", fmt.Errorf("priority weight cannot be negative")
			}
			g.nations[ni].Priorities[pi].Weight = weight
			return fmt.Sprintf("%s priority %s set to %d", g.nations[ni].Name, row.Name, weight), nil
		}
	}
	return "", fmt.Errorf("no priority row %q", id)
}

func (g *Game) surfaceEvent(cmd host.Command) (string, error) {
	for _, el := range g.surface.Elements {
		if el.ID != cmd.Target {
			continue
		}
		switch cmd.Verb {
		case host.VerbUIHover:
			return fmt.Sprintf("%s", el.Label), nil
		case host.VerbUIToggle:
			if el.Kind != "toggle" {
				return "", fmt.Errorf("%s is not a toggle", el.Label)
			}
			return fmt.Sprintf("Toggled %s", el.Label), nil
		default:
			if el.ID == "btn-end-turn" {
				g.advanceTurn()
				return fmt.Sprintf("Turn %d", g.turn), nil
			}
			return fmt.Sprintf("Clicked %s", el.Label), nil
		}
	}
	return "", fmt.Errorf("element %q not on surface", cmd.Target)
}

// advanceTurn applies one turn of income. Caller holds the lock.
func (g *Game) advanceTurn() {
	g.turn++
	for i := range g.resources {
		g.resources[i].Stock += g.resources[i].Income
	}
	g.funds = g.resources[0].Stock
	for i := range g.research {
		if g.research[i].Slot >= 0 && g.research[i].Progress < 1 {
			g.research[i].Progress += 0.05
			if g.research[i].Progress > 1 {
				g.research[i].Progress = 1
			}
		}
	}
	g.rebuildSurface()
}

func (g *Game) syncLedgerFunds() {
	for i := range g.resources {
		if g.resources[i].Name == "Money" {
			g.resources[i].Stock = g.funds
		}
	}
}

// rebuildSurface regenerates the live UI surface. The surface ID embeds the
// turn so the slot cursor rediscovers elements when the screen changes.
func (g *Game) rebuildSurface() {
	g.surface = host.SurfaceSnapshot{
		ID: fmt.Sprintf("strategic-turn-%d", g.turn),
		Elements: []host.SurfaceElement{
			{ID: "btn-end-turn", Label: "End turn", Kind: "button", Container: "Time bar", X: 620, Y: 10, Command: host.Command{Verb: host.VerbUIClick, Target: "btn-end-turn"}},
			{ID: "tgl-pause", Label: "Pause", Kind: "toggle", Container: "Time bar", X: 560, Y: 10, Command: host.Command{Verb: host.VerbUIToggle, Target: "tgl-pause"}},
			{ID: "btn-intel", Label: "Intel report", Kind: "button", Container: "Side panel", X: 20, Y: 120, Command: host.Command{Verb: host.VerbUIClick, Target: "btn-intel"}},
			{ID: "btn-alerts", Label: "Alerts", Kind: "button", Container: "Side panel", X: 20, Y: 160, Command: host.Command{Verb: host.VerbUIClick, Target: "btn-alerts"}},
			{ID: "btn-ledger", Label: "Open ledger", Kind: "button", Container: "Status strip", X: 200, Y: 680, Command: host.Command{Verb: host.VerbUIClick, Target: "btn-ledger"}},
		},
	}
}

func splitTarget(target string) (string, string) {
	for i := 0; i < len(target); i++ {
		if target[i] == '/' {
			return target[:i], target[i+1:]
		}
	}
	return target, ""
}

func cloneFleets(in []host.FleetEntry) []host.FleetEntry {
	out := make([]host.FleetEntry, len(in))
	copy(out, in)
	for i := range out {
		out[i].Ships = append([]string(nil), in[i].Ships...)
	}
	return out
}

func cloneCouncilors(in []host.CouncilorEntry) []host.CouncilorEntry {
	out := make([]host.CouncilorEntry, len(in))
	copy(out, in)
	for i := range out {
		out[i].Missions = append([]string(nil), in[i].Missions...)
	}
	return out
}

func cloneNations(in []host.NationEntry) []host.NationEntry {
	out := make([]host.NationEntry, len(in))
	copy(out, in)
	for i := range out {
		out[i].Priorities = append([]host.PriorityRow(nil), in[i].Priorities...)
	}
	return out
}

func cloneHabs(in []host.HabEntry) []host.HabEntry {
	out := make([]host.HabEntry, len(in))
	copy(out, in)
	for i := range out {
		out[i].Modules = append([]string(nil), in[i].Modules...)
		produces := make(map[string]float64, len(in[i].Produces))
		for k, v := range in[i].Produces {
			produces[k] = v
		}
		out[i].Produces = produces
	}
	return out
}
