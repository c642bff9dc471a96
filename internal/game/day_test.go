package game

import (
	"math/rand"
	"strings"
	"testing"
)

func TestDayEventWidthsSumTo100(t *testing.T) {
	total := 0
	for _, ev := range dayEvents {
		if ev.width <= 0 {
			t.Fatalf("event %q has non-positive width %d", ev.name, ev.width)
		}
		total += ev.width
	}
	if total != 100 {
		t.Fatalf("event widths sum to %d, want 100", total)
	}
}

func TestResolveEventRanges(t *testing.T) {
	tests := []struct {
		roll int
		want string
	}{
		{roll: 0, want: "Fire!"},
		{roll: 5, want: "Fire!"},
		{roll: 6, want: "Good year"},
		{roll: 13, want: "Good year"},
		{roll: 14, want: "Migration"},
		{roll: 21, want: "Migration"},
		{roll: 22, want: "Scandal"},
		{roll: 25, want: "Scandal"},
		{roll: 26, want: "A calm day."},
		{roll: 99, want: "A calm day."},
	}
	for _, tc := range tests {
		st := NewState("")
		msg := resolveEvent(st, tc.roll)
		if !strings.HasPrefix(msg, tc.want) {
			t.Fatalf("roll %d: got %q, want prefix %q", tc.roll, msg, tc.want)
		}
	}
}

func TestResolveEventFire(t *testing.T) {
	st := NewState("")
	st.Wood = 12
	resolveEvent(st, 0)
	if st.Wood != 0 {
		t.Fatalf("fire should burn all 12 wood, left %d", st.Wood)
	}
	if st.Happiness != 44 {
		t.Fatalf("happiness: got %d want 44", st.Happiness)
	}
}

func TestResolveEventScandalCapsAtMoney(t *testing.T) {
	st := NewState("")
	st.Money = 40
	msg := resolveEvent(st, 22)
	if st.Money != 0 {
		t.Fatalf("scandal should take all 40$, left %d", st.Money)
	}
	if !strings.Contains(msg, "40$") {
		t.Fatalf("message should name the amount: %q", msg)
	}
}

func TestAdvanceDayIncrementsAndNormalizes(t *testing.T) {
	svc := NewServiceWithRand(nil, rand.NewSource(1))
	st := NewState("tester")

	for i := 0; i < 200; i++ {
		res := svc.AdvanceDay(st)
		if res.Event == "" {
			t.Fatalf("day %d: empty event message", st.Day)
		}
		if st.Happiness < 0 || st.Happiness > 100 {
			t.Fatalf("day %d: happiness out of range: %d", st.Day, st.Happiness)
		}
		if st.Money < 0 || st.Wood < 0 || st.Stone < 0 || st.Population < 0 {
			t.Fatalf("day %d: negative resource: %+v", st.Day, st)
		}
	}
	if st.Day != 201 {
		t.Fatalf("day counter: got %d want 201", st.Day)
	}
}

func TestAdvanceDayDeterministicWithSeed(t *testing.T) {
	run := func() *State {
		svc := NewServiceWithRand(nil, rand.NewSource(42))
		st := NewState("tester")
		st.Buildings[Workshop] = 3
		st.Buildings[Sawmill] = 2
		for i := 0; i < 50; i++ {
			svc.AdvanceDay(st)
		}
		return st
	}
	a, b := run(), run()
	if a.Money != b.Money || a.Wood != b.Wood || a.Population != b.Population {
		t.Fatalf("seeded runs diverged: %+v vs %+v", a, b)
	}
}
