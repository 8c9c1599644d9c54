package grid

import (
	"testing"

	"github.com/softwatch/astroreview/internal/host"
)

func testGrid() *Model {
	return New("Caspia", []host.PriorityRow{
		{ID: "pr-econ", Name: "Economy", Weight: 3},
		{ID: "pr-welf", Name: "Welfare", Weight: 0},
		{ID: "pr-mil", Name: "Military", Weight: 5},
	}, 5)
}

func TestEnterAnnouncesTitleAndPosition(t *testing.T) {
	g := testGrid()
	got := g.Enter()
	if got != "Caspia, 3 priorities. Economy, weight 3 of 5, row 1 of 3" {
		t.Fatalf("unexpected entry announcement %q", got)
	}
}

func TestRowMovementWraps(t *testing.T) {
	g := testGrid()
	g.Down()
	g.Down()
	if got := g.Down(); got != "Economy, weight 3 of 5, row 1 of 3" {
		t.Fatalf("down should wrap to the first row, got %q", got)
	}
	if got := g.Up(); got != "Military, weight 5 of 5, row 3 of 3" {
		t.Fatalf("up should wrap to the last row, got %q", got)
	}
}

func TestIncreaseEmitsCommand(t *testing.T) {
	g := testGrid()
	cmd, ann := g.Increase()
	if cmd.Verb != host.VerbPrioritySet || cmd.Target != "pr-econ" || cmd.Value != 4 {
		t.Fatalf("unexpected command %+v", cmd)
	}
	if ann != "Economy, weight 4" {
		t.Fatalf("unexpected announcement %q", ann)
	}
}

func TestAdjustClampsAtBounds(t *testing.T) {
	g := testGrid()
	g.Down() // Welfare, weight 0
	cmd, ann := g.Decrease()
	if !cmd.IsZero() {
		t.Fatalf("clamped adjust should not emit a command, got %+v", cmd)
	}
	if ann != "Welfare, weight stays at 0" {
		t.Fatalf("unexpected clamp announcement %q", ann)
	}

	g.Down() // Military, weight 5 == max
	if cmd, _ := g.Increase(); !cmd.IsZero() {
		t.Fatalf("weight at max should clamp, got %+v", cmd)
	}
}

func TestLocalWeightTracksAdjustments(t *testing.T) {
	g := testGrid()
	g.Increase()
	if got := g.Position(); got != "Economy, weight 4 of 5, row 1 of 3" {
		t.Fatalf("optimistic weight should show immediately, got %q", got)
	}
}

func TestEmptyGrid(t *testing.T) {
	g := New("Nowhere", nil, 5)
	if !g.Empty() {
		t.Fatalf("grid with no rows should be empty")
	}
	if got := g.Enter(); got != "Nowhere, no priorities" {
		t.Fatalf("unexpected announcement %q", got)
	}
	if cmd, ann := g.Increase(); !cmd.IsZero() || ann != "" {
		t.Fatalf("empty grid should be inert, got %+v %q", cmd, ann)
	}
}
