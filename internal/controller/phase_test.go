package controller

import "testing"

func TestPhaseNavigatorZeroValue(t *testing.T) {
	var n PhaseNavigator
	if n.Count() != 0 || n.ActiveIndex() != 0 {
		t.Fatalf("expected an empty navigator, got count=%d index=%d", n.Count(), n.ActiveIndex())
	}
	if n.Select(0) {
		t.Fatal("expected no selectable index in an empty navigator")
	}
}

func TestPhaseNavigatorBounds(t *testing.T) {
	var n PhaseNavigator
	n.Reset(3)

	tests := []struct {
		name  string
		index int
		want  bool
	}{
		{name: "first", index: 0, want: true},
		{name: "last", index: 2, want: true},
		{name: "negative", index: -1, want: false},
		{name: "past the end", index: 3, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := n.ActiveIndex()
			got := n.Select(tt.index)
			if got != tt.want {
				t.Fatalf("Select(%d) = %v, want %v", tt.index, got, tt.want)
			}
			if !tt.want && n.ActiveIndex() != before {
				t.Fatalf("rejected selection moved the index from %d to %d", before, n.ActiveIndex())
			}
		})
	}
}

func TestPhaseNavigatorReset(t *testing.T) {
	var n PhaseNavigator
	n.Reset(5)
	n.Select(4)

	n.Reset(2)
	if n.ActiveIndex() != 0 {
		t.Fatalf("expected Reset to activate the first phase, got %d", n.ActiveIndex())
	}
	if n.Select(4) {
		t.Fatal("expected the old index to be out of range after shrinking")
	}

	n.Reset(-1)
	if n.Count() != 0 {
		t.Fatalf("expected a negative count to clamp to zero, got %d", n.Count())
	}
}
