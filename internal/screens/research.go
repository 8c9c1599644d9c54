package screens

import (
	"fmt"

	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/review"
)

// research slots available for assignment; entries use -1 for unassigned
const researchSlots = 3

// Research lists research projects and lets an unassigned project be put
// into one of the faction's research slots.
type Research struct {
	projects []host.ResearchEntry
}

func NewResearch() *Research {
	return &Research{}
}

func (r *Research) Name() string { return "Research" }

func (r *Research) Description() string {
	return "Research projects, their progress, and slot assignments."
}

func (r *Research) Capabilities() review.Capabilities {
	return review.Capabilities{LetterNav: true}
}

func (r *Research) Refresh(h host.Handle) {
	r.projects = append(r.projects[:0], h.Research...)
}

func (r *Research) ItemCount() int { return len(r.projects) }

func (r *Research) ItemSummary(i int) string {
	if i < 0 || i >= len(r.projects) {
		return review.InvalidItemMessage
	}
	p := r.projects[i]
	if p.Slot >= 0 {
		return fmt.Sprintf("%s, slot %d, %.0f percent", p.Name, p.Slot+1, p.Progress*100)
	}
	return fmt.Sprintf("%s, unassigned", p.Name)
}

func (r *Research) ItemDetail(i int) string {
	if i < 0 || i >= len(r.projects) {
		return review.InvalidItemMessage
	}
	p := r.projects[i]
	state := "not being researched"
	if p.Slot >= 0 {
		state = fmt.Sprintf("in slot %d at %.0f percent", p.Slot+1, p.Progress*100)
	}
	return fmt.Sprintf("%s, %s category, %s", p.Name, p.Category, state)
}

func (r *Research) ItemName(i int) string {
	if i < 0 || i >= len(r.projects) {
		return ""
	}
	return r.projects[i].Name
}

func (r *Research) SectionsForItem(h host.Handle, i int) ([]*review.Section, error) {
	if i < 0 || i >= len(r.projects) {
		return nil, nil
	}
	p := r.projects[i]

	details := review.NewSection("Details").
		AddItem("Category", p.Category, "", host.Command{}).
		AddItem("Progress", fmt.Sprintf("%.0f percent", p.Progress*100), "", host.Command{})

	assign := review.NewSection("Assign")
	if p.Slot >= 0 {
		assign.AddItem("Already assigned", fmt.Sprintf("slot %d", p.Slot+1), "", host.Command{})
	} else {
		for slot := 0; slot < researchSlots; slot++ {
			assign.AddItem(fmt.Sprintf("Assign to slot %d", slot+1), "",
				fmt.Sprintf("Put %s into research slot %d", p.Name, slot+1),
				host.Command{Verb: host.VerbResearchSlot, Target: p.ID, Value: slot})
		}
	}
	return []*review.Section{details, assign}, nil
}

func (r *Research) CanDrillIntoItem(h host.Handle, i int) bool {
	return i >= 0 && i < len(r.projects)
}

func (r *Research) ActivationAnnouncement(h host.Handle) string {
	r.Refresh(h)
	return countAnnouncement("Research", len(r.projects))
}
