package screens

import (
	"fmt"
	"sort"

	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/review"
)

// Councilors lists serving councilors and recruitable candidates. The
// faction filter cycles all factions present in the data, then back to all.
type Councilors struct {
	filter     string
	factions   []string
	councilors []host.CouncilorEntry
}

func NewCouncilors() *Councilors {
	return &Councilors{}
}

func (c *Councilors) Name() string { return "Councilors" }

func (c *Councilors) Description() string {
	return "Council members and candidates. Candidates can be recruited; councilors can be sent on missions."
}

func (c *Councilors) Capabilities() review.Capabilities {
	return review.Capabilities{LetterNav: true, FactionFilter: true}
}

func (c *Councilors) Refresh(h host.Handle) {
	seen := map[string]bool{}
	c.factions = c.factions[:0]
	c.councilors = c.councilors[:0]
	for _, co := range h.Councilors {
		if !seen[co.Faction] {
			seen[co.Faction] = true
			// Unaffiliated candidates carry no faction; they only show in
			// the unfiltered view.
			if co.Faction != "" {
				c.factions = append(c.factions, co.Faction)
			}
		}
		if c.filter != "" && co.Faction != c.filter {
			continue
		}
		c.councilors = append(c.councilors, co)
	}
	sort.Strings(c.factions)
	// A filter pointing at a faction that vanished falls back to all.
	if c.filter != "" && !seen[c.filter] {
		c.filter = ""
		c.councilors = append([]host.CouncilorEntry(nil), h.Councilors...)
	}
}

func (c *Councilors) ItemCount() int { return len(c.councilors) }

func (c *Councilors) ItemSummary(i int) string {
	if i < 0 || i >= len(c.councilors) {
		return review.InvalidItemMessage
	}
	co := c.councilors[i]
	if co.Candidate {
		return fmt.Sprintf("%s, %s, candidate", co.Name, co.Role)
	}
	return fmt.Sprintf("%s, %s", co.Name, co.Role)
}

func (c *Councilors) ItemDetail(i int) string {
	if i < 0 || i >= len(c.councilors) {
		return review.InvalidItemMessage
	}
	co := c.councilors[i]
	if co.Candidate {
		return fmt.Sprintf("%s, %s candidate for %s, persuasion %d, costs %.0f money",
			co.Name, co.Role, co.Faction, co.Persuasion, co.Cost)
	}
	return fmt.Sprintf("%s, %s of %s, in %s, persuasion %d, current mission %s",
		co.Name, co.Role, co.Faction, co.Location, co.Persuasion, co.Mission)
}

func (c *Councilors) ItemName(i int) string {
	if i < 0 || i >= len(c.councilors) {
		return ""
	}
	return c.councilors[i].Name
}

func (c *Councilors) SectionsForItem(h host.Handle, i int) ([]*review.Section, error) {
	if i < 0 || i >= len(c.councilors) {
		return nil, nil
	}
	co := c.councilors[i]

	profile := review.NewSection("Profile").
		AddItem("Role", co.Role, "", host.Command{}).
		AddItem("Faction", co.Faction, "", host.Command{}).
		AddItem("Location", co.Location, "", host.Command{}).
		AddItem("Persuasion", fmt.Sprintf("%d", co.Persuasion), "", host.Command{})

	actions := review.NewSection("Actions")
	if co.Candidate {
		actions.AddItem("Recruit", fmt.Sprintf("%.0f money", co.Cost),
			fmt.Sprintf("Hire %s onto the council", co.Name),
			host.Command{Verb: host.VerbCouncilorRecruit, Target: co.ID})
	} else {
		for _, mission := range co.Missions {
			actions.AddItem(mission, "", fmt.Sprintf("Send %s on %s", co.Name, mission),
				host.Command{Verb: host.VerbCouncilorMission, Target: co.ID + "/" + mission})
		}
	}
	return []*review.Section{profile, actions}, nil
}

func (c *Councilors) CanDrillIntoItem(h host.Handle, i int) bool {
	return i >= 0 && i < len(c.councilors)
}

func (c *Councilors) ActivationAnnouncement(h host.Handle) string {
	c.Refresh(h)
	name := "Councilors"
	if c.filter != "" {
		name = "Councilors, " + c.filter
	}
	return countAnnouncement(name, len(c.councilors))
}

// CycleFactionFilter implements review.FactionCycler: all factions in
// sorted order, then back to unfiltered.
func (c *Councilors) CycleFactionFilter(h host.Handle) string {
	c.filter = nextFaction(c.factions, c.filter)
	c.Refresh(h)
	if c.filter == "" {
		return fmt.Sprintf("All factions, %d councilors", len(c.councilors))
	}
	return fmt.Sprintf("%s, %d councilors", c.filter, len(c.councilors))
}

// nextFaction steps through the sorted faction list, "" meaning all.
func nextFaction(factions []string, current string) string {
	if len(factions) == 0 {
		return ""
	}
	if current == "" {
		return factions[0]
	}
	for i, f := range factions {
		if f == current {
			if i+1 < len(factions) {
				return factions[i+1]
			}
			return ""
		}
	}
	return ""
}
