package game

import "fmt"

// DayResult describes everything that happened during one advanced day.
type DayResult struct {
	Produced     Production
	Event        string
	Unlocked     []string
	CompletedIDs []QuestID
}

type dayEvent struct {
	name  string
	width int
	apply func(*State) string
}

// dayEvents is the cumulative-probability table resolved against one roll in
// [0,100). First matching range wins; the widths sum to exactly 100. Tuning
// lives here, not in AdvanceDay.
var dayEvents = []dayEvent{
	{name: "fire", width: 6, apply: func(st *State) string {
		lost := min(20, st.Wood)
		st.Wood -= lost
		st.Happiness -= 6
		return fmt.Sprintf("Fire! Lost %d wood and -6 happiness.", lost)
	}},
	{name: "good_year", width: 8, apply: func(st *State) string {
		st.Money += 50
		st.Wood += 15
		return "Good year: +50$, +15 wood."
	}},
	{name: "migration", width: 8, apply: func(st *State) string {
		st.Population += 5
		st.Happiness += 3
		return "Migration: +5 people."
	}},
	{name: "scandal", width: 4, apply: func(st *State) string {
		lost := min(100, st.Money)
		st.Money -= lost
		st.Happiness -= 10
		return fmt.Sprintf("Scandal: lost %d$ and -10 happiness.", lost)
	}},
	{name: "calm", width: 74, apply: func(*State) string {
		return "A calm day."
	}},
}

func resolveEvent(st *State, roll int) string {
	upper := 0
	for _, ev := range dayEvents {
		upper += ev.width
		if roll < upper {
			return ev.apply(st)
		}
	}
	return dayEvents[len(dayEvents)-1].apply(st)
}

// AdvanceDay runs one full day: production, one random event, the day counter,
// then achievement and quest checks. The caller renders the returned result.
func (s *Service) AdvanceDay(st *State) DayResult {
	produced := s.ComputeDailyProduction(st)
	event := resolveEvent(st, s.rand.Intn(100))
	st.Day++
	st.Normalize()

	unlocked := s.CheckAchievements(st)
	completed := s.CheckQuests(st)

	s.log.Debug("day advanced",
		"day", st.Day,
		"money", produced.Money,
		"wood", produced.Wood,
		"stone", produced.Stone,
	)
	return DayResult{
		Produced:     produced,
		Event:        event,
		Unlocked:     unlocked,
		CompletedIDs: completed,
	}
}
