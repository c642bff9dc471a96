package game

import "math"

// Production is one day's aggregate yield after all multipliers.
type Production struct {
	Money int `json:"money"`
	Wood  int `json:"wood"`
	Stone int `json:"stone"`
}

const (
	prestigePointBonus  = 0.02
	betterToolsMult     = 1.2
	managerProdBonus    = 0.15
	managerProdBonusCap = 0.5
	marketIncomePerUnit = 2
)

// EffectiveCount dampens returns on stacking identical buildings: doubling a
// count does not double output. Zero in, zero out; otherwise at least 1.
func EffectiveCount(n int) int {
	if n <= 0 {
		return 0
	}
	return max(1, int(math.Pow(float64(n), 0.85)))
}

// PrestigeMultiplier is the permanent production bonus earned through resets.
func PrestigeMultiplier(st *State) float64 {
	return 1.0 + float64(st.PrestigePoints)*prestigePointBonus
}

// ComputeDailyProduction applies one day of building and population output to
// the state and returns the three aggregate totals for display. Pavilions,
// hospitals and schools also nudge happiness, and schools accrue research.
// The prestige multiplier scales the aggregate totals only, never individual
// building contributions, costs or trade prices.
func (s *Service) ComputeDailyProduction(st *State) Production {
	prestigeMult := PrestigeMultiplier(st)
	toolMult := 1.0
	if st.Upgrades[BetterTools] {
		toolMult = betterToolsMult
	}
	mgrProd := 0.0
	if st.Upgrades[ManagerProd] {
		mgrProd = managerProdBonus
	}
	mgrProd = min(mgrProd, managerProdBonusCap)

	var totalMoney, totalWood, totalStone int
	for kind, cnt := range st.Buildings {
		if cnt <= 0 {
			continue
		}
		eff := EffectiveCount(cnt)
		switch kind {
		case Workshop, Farm:
			base := st.Production[kind] * eff
			totalMoney += int(float64(base) * toolMult * (1 + mgrProd))
		case Sawmill:
			base := st.Production[Sawmill] * eff
			totalWood += int(float64(base) * toolMult)
		case Quarry:
			base := st.Production[Quarry] * eff
			totalStone += int(float64(base) * toolMult)
		case Market:
			totalMoney += marketIncomePerUnit * eff
		}
	}

	baseIncome := st.Population * st.Happiness / 30
	totalMoney += baseIncome
	// A percentage manager boosts population income only, never building
	// production, so the two bonuses cannot stack multiplicatively.
	if st.ManagerBonus > 0 {
		totalMoney += baseIncome * st.ManagerBonus / 100
	}

	totalMoney = int(float64(totalMoney) * prestigeMult)
	totalWood = int(float64(totalWood) * prestigeMult)
	totalStone = int(float64(totalStone) * prestigeMult)

	st.Money += totalMoney
	st.Wood += totalWood
	st.Stone += totalStone
	st.Happiness += st.Buildings[Pavilion] + st.Buildings[Hospital] + st.Buildings[School]
	st.ResearchPoints += int(float64(st.Buildings[School]) * 0.5 * prestigeMult)
	st.Normalize()

	return Production{Money: totalMoney, Wood: totalWood, Stone: totalStone}
}
