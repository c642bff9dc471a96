package game

// Achievement ids.
const (
	AchievementWealthy      = "Wealthy"
	AchievementPop100       = "Pop100"
	AchievementYearSurvivor = "YearSurvivor"
)

// BuildCost is the price of constructing one building. Unspecified resources
// cost nothing.
type BuildCost struct {
	Money int
	Wood  int
	Stone int
}

var buildCosts = map[Building]BuildCost{
	House:    {Money: 200, Wood: 20, Stone: 5},
	Pavilion: {Money: 150, Wood: 10},
	Workshop: {Money: 300, Wood: 30, Stone: 10},
	Market:   {Money: 250, Wood: 15, Stone: 10},
	Farm:     {Money: 180, Wood: 5},
	Sawmill:  {Money: 250},
	Quarry:   {Money: 250},
	School:   {Money: 400, Wood: 20},
	Hospital: {Money: 600, Wood: 30, Stone: 20},
}

// ConstructionCost returns the effective cost of one building for this state,
// with the reduced_build_costs discount applied.
func ConstructionCost(st *State, kind Building) (BuildCost, error) {
	cost, ok := buildCosts[kind]
	if !ok {
		return BuildCost{}, ErrUnknownBuilding
	}
	if st.Upgrades[ReducedBuildCosts] {
		cost.Money = cost.Money * 95 / 100
		cost.Wood = cost.Wood * 95 / 100
		cost.Stone = cost.Stone * 95 / 100
	}
	return cost, nil
}

// Construct pays the cost table price and raises the building count by one.
func (s *Service) Construct(st *State, kind Building) error {
	cost, err := ConstructionCost(st, kind)
	if err != nil {
		return err
	}
	if st.Money < cost.Money || st.Wood < cost.Wood || st.Stone < cost.Stone {
		return ErrInsufficientResources
	}
	st.Money -= cost.Money
	st.Wood -= cost.Wood
	st.Stone -= cost.Stone
	st.Buildings[kind]++
	st.Normalize()
	s.CheckQuests(st)
	return nil
}

// ManagerRole distinguishes what a hired manager actually does.
type ManagerRole string

const (
	RoleBaseIncome  ManagerRole = "base_income"
	RoleReduceCosts ManagerRole = "reduce_costs"
	RoleProdBoost   ManagerRole = "prod_boost"
)

// ManagerOffer is one fixed hiring option.
type ManagerOffer struct {
	Name     string
	BonusPct int
	Cost     int
	Role     ManagerRole
}

var ManagerCatalog = []ManagerOffer{
	{Name: "Jacek", BonusPct: 5, Cost: 1000, Role: RoleBaseIncome},
	{Name: "Monika", BonusPct: 10, Cost: 2500, Role: RoleBaseIncome},
	{Name: "Joanna", BonusPct: 3, Cost: 1500, Role: RoleReduceCosts},
	{Name: "Mariusz", BonusPct: 15, Cost: 5000, Role: RoleProdBoost},
}

// HireManager pays the hiring cost of ManagerCatalog[choice] and applies the
// offer. Flag-granting managers clear the numeric bonus: their effect is
// cost-side or production-side, not income-side.
func (s *Service) HireManager(st *State, choice int) (ManagerOffer, error) {
	if choice < 0 || choice >= len(ManagerCatalog) {
		return ManagerOffer{}, ErrUnknownManager
	}
	offer := ManagerCatalog[choice]
	if st.Money < offer.Cost {
		return ManagerOffer{}, ErrInsufficientFunds
	}
	st.Money -= offer.Cost
	st.Manager = offer.Name
	st.ManagerBonus = offer.BonusPct
	switch offer.Role {
	case RoleReduceCosts:
		st.Upgrades[ReducedBuildCosts] = true
		st.ManagerBonus = 0
	case RoleProdBoost:
		st.Upgrades[ManagerProd] = true
		st.ManagerBonus = 0
	}
	st.Normalize()
	return offer, nil
}

// UpgradeOffer pairs an upgrade with its display name and research cost.
type UpgradeOffer struct {
	ID   Upgrade
	Name string
	Cost int
}

var UpgradeCatalog = []UpgradeOffer{
	{ID: BetterTools, Name: "Better Tools", Cost: 10},
	{ID: MarketReforms, Name: "Market Reforms", Cost: 6},
	{ID: ReducedBuildCosts, Name: "Reduced Build Costs", Cost: 8},
	{ID: ManagerProd, Name: "Manager Production", Cost: 12},
}

// PurchaseUpgrade spends research points and sets the upgrade flag. A
// repurchase is not rejected and still costs points; callers should check the
// flag before offering the upgrade.
func (s *Service) PurchaseUpgrade(st *State, id Upgrade, cost int) error {
	known := false
	for _, u := range AllUpgrades {
		if u == id {
			known = true
			break
		}
	}
	if !known {
		return ErrUnknownUpgrade
	}
	if st.ResearchPoints < cost {
		return ErrInsufficientResearch
	}
	st.ResearchPoints -= cost
	st.Upgrades[id] = true
	st.Normalize()
	return nil
}

var questGoals = map[QuestID]func(*State) bool{
	QuestPop100:      func(st *State) bool { return st.Population >= 100 },
	QuestMoney50K:    func(st *State) bool { return st.Money >= 50000 },
	QuestBuildFarm10: func(st *State) bool { return st.Buildings[Farm] >= 10 },
}

// CheckQuests evaluates every undone quest and, on first satisfaction, marks
// it done and pays its reward exactly once. A done quest is never re-evaluated,
// not even after a prestige reset. Returns the newly completed ids.
func (s *Service) CheckQuests(st *State) []QuestID {
	var completed []QuestID
	for id, q := range st.Quests {
		if q.Done {
			continue
		}
		goal, ok := questGoals[id]
		if !ok || !goal(st) {
			continue
		}
		q.Done = true
		s.ApplyReward(st, q.Reward)
		completed = append(completed, id)
	}
	return completed
}

// ApplyReward credits every present reward field to the state.
func (s *Service) ApplyReward(st *State, r Reward) {
	st.Money += r.Money
	st.ResearchPoints += r.Research
	st.Wood += r.Wood
	st.Stone += r.Stone
	st.Normalize()
}

// CheckAchievements unlocks any newly earned achievements. Idempotent.
func (s *Service) CheckAchievements(st *State) []string {
	var unlocked []string
	add := func(id string, hit bool) {
		if hit && !st.Achievements[id] {
			st.Achievements[id] = true
			unlocked = append(unlocked, id)
		}
	}
	add(AchievementWealthy, st.Money >= 10000)
	add(AchievementPop100, st.Population >= 100)
	add(AchievementYearSurvivor, st.Day >= 365)
	return unlocked
}

const (
	festivalCost      = 200
	festivalHappiness = 20
)

// CollectTaxes adds amount to the treasury at the price of one happiness per
// five money taken. Returns the happiness lost.
func (s *Service) CollectTaxes(st *State, amount int) (int, error) {
	if amount < 0 {
		return 0, ErrInvalidQuantity
	}
	st.Money += amount
	lost := amount / 5
	st.Happiness -= lost
	st.Normalize()
	return lost, nil
}

// HoldFestival trades 200 money for 20 happiness.
func (s *Service) HoldFestival(st *State) error {
	if st.Money < festivalCost {
		return ErrInsufficientFunds
	}
	st.Money -= festivalCost
	st.Happiness += festivalHappiness
	st.Normalize()
	return nil
}
