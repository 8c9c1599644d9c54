package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Task Force Kestrel", "Earth", "3"},
		{"Relay Wing", "Luna", "12"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := []string{
		"Task Force Kestrel  Earth   3",
		"Relay Wing          Luna   12",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d:\n got %q\nwant %q", i, got[i], want[i])
		}
	}
}

func TestFormatTrimsTrailingPadding(t *testing.T) {
	rows := [][]string{
		{"long name here", "x"},
		{"short", "y"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	for i, line := range got {
		if line != "" && line[len(line)-1] == ' ' {
			t.Fatalf("row %d ends in padding: %q", i, line)
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
