package screens

import (
	"fmt"

	"github.com/softwatch/astroreview/internal/format/table"
	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/review"
)

// Fleets lists the player's fleets, or every visible fleet when toggled to
// the all-factions view.
type Fleets struct {
	showAll bool
	faction string
	fleets  []host.FleetEntry
	lines   []string
}

func NewFleets() *Fleets {
	return &Fleets{}
}

func (f *Fleets) Name() string { return "Fleets" }

func (f *Fleets) Description() string {
	return "Fleets and task forces. Toggle between your fleets and all visible fleets."
}

func (f *Fleets) Capabilities() review.Capabilities {
	return review.Capabilities{ViewToggle: true, LetterNav: true}
}

func (f *Fleets) Refresh(h host.Handle) {
	f.faction = h.Faction
	f.fleets = f.fleets[:0]
	for _, fl := range h.Fleets {
		if !f.showAll && fl.Faction != h.Faction {
			continue
		}
		f.fleets = append(f.fleets, fl)
	}
	rows := make([][]string, 0, len(f.fleets))
	for _, fl := range f.fleets {
		rows = append(rows, []string{fl.Name, fl.System, fl.Mission})
	}
	f.lines = table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft})
}

func (f *Fleets) ItemCount() int { return len(f.fleets) }

func (f *Fleets) ItemSummary(i int) string { return lineAt(f.lines, i) }

func (f *Fleets) ItemDetail(i int) string {
	if i < 0 || i >= len(f.fleets) {
		return review.InvalidItemMessage
	}
	fl := f.fleets[i]
	return fmt.Sprintf("%s, %s fleet in %s, mission %s, %.0f kps delta-v, %d ships",
		fl.Name, fl.Faction, fl.System, fl.Mission, fl.DeltaV, len(fl.Ships))
}

func (f *Fleets) ItemName(i int) string {
	if i < 0 || i >= len(f.fleets) {
		return ""
	}
	return f.fleets[i].Name
}

func (f *Fleets) SectionsForItem(h host.Handle, i int) ([]*review.Section, error) {
	if i < 0 || i >= len(f.fleets) {
		return nil, nil
	}
	fl := f.fleets[i]

	status := review.NewSection("Status").
		AddItem("System", fl.System, "", host.Command{}).
		AddItem("Mission", fl.Mission, "", host.Command{}).
		AddItem("Delta-v", fmt.Sprintf("%.0f kps", fl.DeltaV), "", host.Command{})

	ships := review.NewSection("Ships")
	for _, ship := range fl.Ships {
		ships.AddItem(ship, "", "", host.Command{})
	}

	secs := []*review.Section{status, ships}
	if fl.Faction == f.faction {
		orders := review.NewSection("Orders").
			AddItem("Dock at nearest hab", "", "Return the fleet to dock for refit and refuel",
				host.Command{Verb: host.VerbFleetDock, Target: fl.ID}).
			AddItem("Intercept nearest hostile", "", "Burn for the closest hostile contact",
				host.Command{Verb: host.VerbFleetIntercept, Target: fl.ID})
		secs = append(secs, orders)
	}
	return secs, nil
}

func (f *Fleets) CanDrillIntoItem(h host.Handle, i int) bool {
	return i >= 0 && i < len(f.fleets)
}

func (f *Fleets) ActivationAnnouncement(h host.Handle) string {
	f.Refresh(h)
	if f.showAll {
		return countAnnouncement("Fleets, all factions", len(f.fleets))
	}
	return countAnnouncement("Fleets", len(f.fleets))
}

// ToggleViewMode implements review.ViewToggler.
func (f *Fleets) ToggleViewMode(h host.Handle) string {
	f.showAll = !f.showAll
	f.Refresh(h)
	if f.showAll {
		return fmt.Sprintf("Showing all fleets, %d visible", len(f.fleets))
	}
	return fmt.Sprintf("Showing your fleets, %d", len(f.fleets))
}
