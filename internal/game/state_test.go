package game

import "testing"

func TestNewStateDefaults(t *testing.T) {
	st := NewState("Testville")
	if st.PlayerName != "Testville" {
		t.Fatalf("player name: got %q", st.PlayerName)
	}
	if st.Day != 1 || st.Money != 500 || st.Population != 10 || st.Happiness != 50 || st.Wood != 50 || st.Stone != 20 {
		t.Fatalf("unexpected starting values: %+v", st)
	}
	if st.Manager != NoManager || st.ManagerBonus != 0 {
		t.Fatalf("expected no manager, got %q (+%d%%)", st.Manager, st.ManagerBonus)
	}
	if len(st.Buildings) != len(AllBuildings) {
		t.Fatalf("expected %d building kinds, got %d", len(AllBuildings), len(st.Buildings))
	}
	for _, b := range AllBuildings {
		if st.Buildings[b] != 0 {
			t.Fatalf("building %s should start at 0", b)
		}
	}
	want := map[Building]int{Workshop: 10, Farm: 8, Sawmill: 6, Quarry: 4}
	for b, rate := range want {
		if st.Production[b] != rate {
			t.Fatalf("production[%s]: got %d want %d", b, st.Production[b], rate)
		}
	}
	if len(st.Quests) != 3 {
		t.Fatalf("expected 3 default quests, got %d", len(st.Quests))
	}
	for id, q := range st.Quests {
		if q.Done {
			t.Fatalf("quest %s should start undone", id)
		}
	}
	for _, u := range AllUpgrades {
		if st.Upgrades[u] {
			t.Fatalf("upgrade %s should start locked", u)
		}
	}
}

func TestNormalizeClamps(t *testing.T) {
	st := NewState("")
	st.Money = -50
	st.Wood = -1
	st.Stone = -999
	st.Population = -3
	st.Happiness = 150
	st.Normalize()
	if st.Money != 0 || st.Wood != 0 || st.Stone != 0 || st.Population != 0 {
		t.Fatalf("negative values not clamped: %+v", st)
	}
	if st.Happiness != 100 {
		t.Fatalf("happiness not clamped to 100: %d", st.Happiness)
	}
	st.Happiness = -20
	st.Normalize()
	if st.Happiness != 0 {
		t.Fatalf("happiness not clamped to 0: %d", st.Happiness)
	}
}

func TestNormalizeFillsMissingKinds(t *testing.T) {
	st := NewState("")
	delete(st.Buildings, Hospital)
	st.Buildings[Farm] = -2
	delete(st.Upgrades, ManagerProd)
	st.Normalize()
	if v, ok := st.Buildings[Hospital]; !ok || v != 0 {
		t.Fatalf("missing building kind not restored: %v %v", v, ok)
	}
	if st.Buildings[Farm] != 0 {
		t.Fatalf("negative building count not clamped: %d", st.Buildings[Farm])
	}
	if _, ok := st.Upgrades[ManagerProd]; !ok {
		t.Fatalf("missing upgrade flag not restored")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	st := NewState("A")
	st.Buildings[Farm] = 4
	st.Achievements[AchievementWealthy] = true
	clone := st.Clone()
	clone.Buildings[Farm] = 9
	clone.Achievements[AchievementPop100] = true
	clone.Quests[QuestPop100].Done = true
	if st.Buildings[Farm] != 4 {
		t.Fatalf("clone mutated original buildings")
	}
	if st.Achievements[AchievementPop100] {
		t.Fatalf("clone mutated original achievements")
	}
	if st.Quests[QuestPop100].Done {
		t.Fatalf("clone mutated original quests")
	}
}
