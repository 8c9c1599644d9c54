package ui

import "testing"

func TestBestMatchIndex(t *testing.T) {
	names := []string{"Task Force Kestrel", "Aurora Convoy", "Aurora Relay", "Vigil Squadron"}

	cases := []struct {
		query string
		want  int
	}{
		{"aurora convoy", 1}, // exact, case-insensitive
		{"aurora", 1},        // prefix, first wins
		{"squad", 3},         // substring
		{"kestrel", 0},       // substring inside a longer name
		{"aurra", 2},         // fuzzy typo, closest name wins
		{"", -1},
		{"   ", -1},
		{"zzzz", -1},
	}
	for _, tc := range cases {
		if got := bestMatchIndex(names, tc.query); got != tc.want {
			t.Fatalf("query %q: expected index %d, got %d", tc.query, tc.want, got)
		}
	}
}

func TestBestMatchIndexEmptyNames(t *testing.T) {
	if got := bestMatchIndex(nil, "anything"); got != -1 {
		t.Fatalf("no names should yield -1, got %d", got)
	}
}
