package game

import (
	"errors"
	"testing"
)

func TestConstructionCostDiscount(t *testing.T) {
	st := NewState("")
	cost, err := ConstructionCost(st, Farm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost.Money != 180 || cost.Wood != 5 || cost.Stone != 0 {
		t.Fatalf("farm cost: %+v", cost)
	}

	st.Upgrades[ReducedBuildCosts] = true
	cost, err = ConstructionCost(st, Farm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost.Money != 171 || cost.Wood != 4 {
		t.Fatalf("discounted farm cost: %+v", cost)
	}
}

func TestConstructionCostUnknown(t *testing.T) {
	st := NewState("")
	if _, err := ConstructionCost(st, Building("castle")); !errors.Is(err, ErrUnknownBuilding) {
		t.Fatalf("got %v, want ErrUnknownBuilding", err)
	}
}

func TestConstruct(t *testing.T) {
	svc := NewService(nil)
	st := NewState("")
	st.Money, st.Wood, st.Stone = 300, 30, 10

	if err := svc.Construct(st, Workshop); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Buildings[Workshop] != 1 {
		t.Fatalf("workshop count: got %d want 1", st.Buildings[Workshop])
	}
	if st.Money != 0 || st.Wood != 0 || st.Stone != 0 {
		t.Fatalf("resources not debited: %+v", st)
	}
}

func TestConstructInsufficientLeavesStateUntouched(t *testing.T) {
	svc := NewService(nil)
	st := NewState("")
	st.Money = 100
	before := st.Clone()

	if err := svc.Construct(st, Hospital); !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("got %v, want ErrInsufficientResources", err)
	}
	if st.Money != before.Money || st.Wood != before.Wood || st.Stone != before.Stone {
		t.Fatalf("failed construct mutated resources: %+v", st)
	}
	if st.Buildings[Hospital] != 0 {
		t.Fatalf("hospital count changed: %d", st.Buildings[Hospital])
	}
}

func TestConstructTenthFarmCompletesQuest(t *testing.T) {
	svc := NewService(nil)
	st := NewState("")
	st.Money, st.Wood = 5000, 1000
	st.Buildings[Farm] = 9

	moneyBefore := st.Money
	if err := svc.Construct(st, Farm); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := st.Quests[QuestBuildFarm10]
	if q == nil || !q.Done {
		t.Fatalf("farm quest not completed: %+v", q)
	}
	// Build cost 180 out, quest reward 2000 in.
	if st.Money != moneyBefore-180+2000 {
		t.Fatalf("money: got %d want %d", st.Money, moneyBefore-180+2000)
	}
	if st.ResearchPoints != 10 {
		t.Fatalf("research reward: got %d want 10", st.ResearchPoints)
	}
}

func TestCheckQuestsPaysExactlyOnce(t *testing.T) {
	svc := NewService(nil)
	st := NewState("")
	st.Money = 60000

	first := svc.CheckQuests(st)
	if len(first) != 1 || first[0] != QuestMoney50K {
		t.Fatalf("first pass: %v", first)
	}
	if st.ResearchPoints != 50 {
		t.Fatalf("reward: got %d research want 50", st.ResearchPoints)
	}
	if again := svc.CheckQuests(st); len(again) != 0 {
		t.Fatalf("second pass should complete nothing: %v", again)
	}
	if st.ResearchPoints != 50 {
		t.Fatalf("reward paid twice: %d", st.ResearchPoints)
	}
}

func TestQuestsStayDoneThroughPrestige(t *testing.T) {
	svc := NewService(nil)
	st := NewState("")
	st.Money = 60000
	svc.CheckQuests(st)

	st.Money = 10_000_000
	if _, err := svc.Prestige(st); err != nil {
		t.Fatalf("prestige: %v", err)
	}
	if !st.Quests[QuestMoney50K].Done {
		t.Fatalf("done quest reopened by prestige")
	}
	st.Money = 60000
	if completed := svc.CheckQuests(st); len(completed) != 0 {
		t.Fatalf("quest completed again after prestige: %v", completed)
	}
}

func TestCheckAchievements(t *testing.T) {
	svc := NewService(nil)
	st := NewState("")
	st.Money = 10000
	st.Population = 100
	st.Day = 365

	got := svc.CheckAchievements(st)
	if len(got) != 3 {
		t.Fatalf("unlocked %v, want all three", got)
	}
	if again := svc.CheckAchievements(st); len(again) != 0 {
		t.Fatalf("achievements unlocked twice: %v", again)
	}
}

func TestHireManager(t *testing.T) {
	svc := NewService(nil)

	st := NewState("")
	st.Money = 3000
	offer, err := svc.HireManager(st, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer.Name != "Monika" {
		t.Fatalf("offer: %+v", offer)
	}
	if st.Manager != "Monika" || st.ManagerBonus != 10 {
		t.Fatalf("manager state: %s/%d", st.Manager, st.ManagerBonus)
	}
	if st.Money != 500 {
		t.Fatalf("money: got %d want 500", st.Money)
	}
}

func TestHireManagerFlagRoles(t *testing.T) {
	svc := NewService(nil)

	st := NewState("")
	st.Money = 2000
	if _, err := svc.HireManager(st, 2); err != nil {
		t.Fatalf("joanna: %v", err)
	}
	if !st.Upgrades[ReducedBuildCosts] || st.ManagerBonus != 0 {
		t.Fatalf("reduce_costs hire: upgrades=%v bonus=%d", st.Upgrades, st.ManagerBonus)
	}

	st = NewState("")
	st.Money = 5000
	if _, err := svc.HireManager(st, 3); err != nil {
		t.Fatalf("mariusz: %v", err)
	}
	if !st.Upgrades[ManagerProd] || st.ManagerBonus != 0 {
		t.Fatalf("prod_boost hire: upgrades=%v bonus=%d", st.Upgrades, st.ManagerBonus)
	}
}

func TestHireManagerFailures(t *testing.T) {
	svc := NewService(nil)
	st := NewState("")

	if _, err := svc.HireManager(st, -1); !errors.Is(err, ErrUnknownManager) {
		t.Fatalf("negative choice: %v", err)
	}
	if _, err := svc.HireManager(st, len(ManagerCatalog)); !errors.Is(err, ErrUnknownManager) {
		t.Fatalf("out of range choice: %v", err)
	}
	if _, err := svc.HireManager(st, 0); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("too poor: %v", err)
	}
	if st.Manager != NoManager || st.Money != 500 {
		t.Fatalf("failed hire mutated state: %+v", st)
	}
}

func TestPurchaseUpgrade(t *testing.T) {
	svc := NewService(nil)
	st := NewState("")
	st.ResearchPoints = 10

	if err := svc.PurchaseUpgrade(st, BetterTools, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.Upgrades[BetterTools] || st.ResearchPoints != 0 {
		t.Fatalf("upgrade not applied: %+v", st)
	}

	if err := svc.PurchaseUpgrade(st, MarketReforms, 6); !errors.Is(err, ErrInsufficientResearch) {
		t.Fatalf("broke purchase: %v", err)
	}
	if err := svc.PurchaseUpgrade(st, Upgrade("teleport"), 1); !errors.Is(err, ErrUnknownUpgrade) {
		t.Fatalf("unknown upgrade: %v", err)
	}
}

func TestPurchaseUpgradeRepurchaseStillCharges(t *testing.T) {
	svc := NewService(nil)
	st := NewState("")
	st.ResearchPoints = 20

	if err := svc.PurchaseUpgrade(st, BetterTools, 10); err != nil {
		t.Fatalf("first purchase: %v", err)
	}
	if err := svc.PurchaseUpgrade(st, BetterTools, 10); err != nil {
		t.Fatalf("second purchase: %v", err)
	}
	if st.ResearchPoints != 0 {
		t.Fatalf("research: got %d want 0", st.ResearchPoints)
	}
}

func TestCollectTaxes(t *testing.T) {
	svc := NewService(nil)
	st := NewState("")

	lost, err := svc.CollectTaxes(st, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lost != 20 {
		t.Fatalf("lost: got %d want 20", lost)
	}
	if st.Money != 600 || st.Happiness != 30 {
		t.Fatalf("state: money=%d happiness=%d", st.Money, st.Happiness)
	}

	if _, err := svc.CollectTaxes(st, -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("negative amount: %v", err)
	}
}

func TestHoldFestival(t *testing.T) {
	svc := NewService(nil)
	st := NewState("")
	st.Happiness = 70

	if err := svc.HoldFestival(st); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Money != 300 || st.Happiness != 90 {
		t.Fatalf("state: money=%d happiness=%d", st.Money, st.Happiness)
	}

	st.Money = 100
	if err := svc.HoldFestival(st); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("broke festival: %v", err)
	}
}

func TestHoldFestivalClampsHappiness(t *testing.T) {
	svc := NewService(nil)
	st := NewState("")
	st.Happiness = 95

	if err := svc.HoldFestival(st); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Happiness != 100 {
		t.Fatalf("happiness: got %d want 100", st.Happiness)
	}
}
