package game

// Progress tier divisors for prestige points.
const (
	prestigeMoneyReq = 10_000_000
	prestigePopReq   = 1000
	prestigeDayReq   = 1000
)

// Post-reset starting values. Slightly better-stocked than a brand new city
// in money, slightly worse in raw resources.
const (
	prestigeResetMoney = 1000
	prestigeResetPop   = 10
	prestigeResetHappy = 50
	prestigeResetWood  = 20
	prestigeResetStone = 10
)

// PrestigeValue is the number of points a reset would grant right now: the sum
// of three independent progress-tier counters. Can be zero.
func PrestigeValue(st *State) int {
	return st.Money/prestigeMoneyReq + st.Population/prestigePopReq + st.Day/prestigeDayReq
}

func CanPrestige(st *State) bool {
	return PrestigeValue(st) > 0
}

// Prestige banks the current prestige value and resets the city. Points only
// ever accumulate. Research, upgrades, achievements and quest completion all
// survive the reset, so a quest reward is granted at most once per lifetime.
func (s *Service) Prestige(st *State) (int, error) {
	pts := PrestigeValue(st)
	if pts <= 0 {
		return 0, ErrNothingToPrestige
	}
	st.PrestigePoints += pts
	st.Day = 1
	st.Money = prestigeResetMoney
	st.Population = prestigeResetPop
	st.Happiness = prestigeResetHappy
	st.Wood = prestigeResetWood
	st.Stone = prestigeResetStone
	for kind := range st.Buildings {
		st.Buildings[kind] = 0
	}
	st.Normalize()
	s.log.Info("prestige reset", "points", pts, "total", st.PrestigePoints)
	return pts, nil
}
