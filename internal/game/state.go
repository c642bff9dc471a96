package game

// Building identifies one of the fixed construction kinds.
type Building string

const (
	House    Building = "house"
	Pavilion Building = "pavilion"
	Workshop Building = "workshop"
	Market   Building = "market"
	Farm     Building = "farm"
	Sawmill  Building = "sawmill"
	Quarry   Building = "quarry"
	School   Building = "school"
	Hospital Building = "hospital"
)

// AllBuildings enumerates the closed set of building kinds in display order.
var AllBuildings = []Building{House, Pavilion, Workshop, Market, Farm, Sawmill, Quarry, School, Hospital}

// Upgrade identifies a research-funded permanent unlock.
type Upgrade string

const (
	BetterTools       Upgrade = "better_tools"
	MarketReforms     Upgrade = "market_reforms"
	ReducedBuildCosts Upgrade = "reduced_build_costs"
	ManagerProd       Upgrade = "manager_prod"
)

var AllUpgrades = []Upgrade{BetterTools, MarketReforms, ReducedBuildCosts, ManagerProd}

// QuestID identifies one of the default quests.
type QuestID string

const (
	QuestPop100      QuestID = "q_pop100"
	QuestMoney50K    QuestID = "q_money50k"
	QuestBuildFarm10 QuestID = "q_build_farm_10"
)

// Reward lists what completing a quest pays out. Absent fields stay zero.
type Reward struct {
	Money    int `json:"money,omitempty"`
	Research int `json:"research,omitempty"`
	Wood     int `json:"wood,omitempty"`
	Stone    int `json:"stone,omitempty"`
}

type Quest struct {
	Description string
	Done        bool
	Reward      Reward
}

// NoManager is the sentinel value for State.Manager when nobody is hired.
const NoManager = "none"

// State is the full mutable game state for one running city. Operations on
// Service mutate it in place; callers own exactly one State per session.
type State struct {
	PlayerName     string
	Day            int
	Money          int
	Population     int
	Happiness      int
	Wood           int
	Stone          int
	Manager        string
	ManagerBonus   int
	Buildings      map[Building]int
	Production     map[Building]int
	ResearchPoints int
	Upgrades       map[Upgrade]bool
	Achievements   map[string]bool
	Quests         map[QuestID]*Quest
	PrestigePoints int
}

// NewState returns a fresh city with the fixed starting values.
func NewState(playerName string) *State {
	st := &State{
		PlayerName:   playerName,
		Day:          1,
		Money:        500,
		Population:   10,
		Happiness:    50,
		Wood:         50,
		Stone:        20,
		Manager:      NoManager,
		Buildings:    make(map[Building]int, len(AllBuildings)),
		Production:   defaultProduction(),
		Upgrades:     make(map[Upgrade]bool, len(AllUpgrades)),
		Achievements: make(map[string]bool),
		Quests:       DefaultQuests(),
	}
	st.Normalize()
	return st
}

func defaultProduction() map[Building]int {
	return map[Building]int{
		Workshop: 10,
		Farm:     8,
		Sawmill:  6,
		Quarry:   4,
	}
}

// DefaultQuests returns the three starting quests, all undone.
func DefaultQuests() map[QuestID]*Quest {
	return map[QuestID]*Quest{
		QuestPop100:      {Description: "Reach a population of 100", Reward: Reward{Money: 5000}},
		QuestMoney50K:    {Description: "Accumulate 50,000 money", Reward: Reward{Research: 50}},
		QuestBuildFarm10: {Description: "Build 10 farms", Reward: Reward{Money: 2000, Research: 10}},
	}
}

// Normalize re-establishes the numeric invariants: resources, money,
// population, research and prestige stay non-negative, happiness stays in
// [0,100], and the buildings/upgrades maps always cover their full key sets.
// Every mutating operation ends with a Normalize call.
func (st *State) Normalize() {
	st.Money = max(0, st.Money)
	st.Population = max(0, st.Population)
	st.Wood = max(0, st.Wood)
	st.Stone = max(0, st.Stone)
	st.ResearchPoints = max(0, st.ResearchPoints)
	st.PrestigePoints = max(0, st.PrestigePoints)
	st.ManagerBonus = max(0, st.ManagerBonus)
	st.Happiness = min(100, max(0, st.Happiness))

	if st.Manager == "" {
		st.Manager = NoManager
	}
	if st.Buildings == nil {
		st.Buildings = make(map[Building]int, len(AllBuildings))
	}
	for _, b := range AllBuildings {
		st.Buildings[b] = max(0, st.Buildings[b])
	}
	if st.Production == nil {
		st.Production = defaultProduction()
	}
	if st.Upgrades == nil {
		st.Upgrades = make(map[Upgrade]bool, len(AllUpgrades))
	}
	for _, u := range AllUpgrades {
		if _, ok := st.Upgrades[u]; !ok {
			st.Upgrades[u] = false
		}
	}
	if st.Achievements == nil {
		st.Achievements = make(map[string]bool)
	}
	if st.Quests == nil {
		st.Quests = DefaultQuests()
	}
}

// Clone returns a deep copy of the state.
func (st *State) Clone() *State {
	out := *st
	out.Buildings = make(map[Building]int, len(st.Buildings))
	for k, v := range st.Buildings {
		out.Buildings[k] = v
	}
	out.Production = make(map[Building]int, len(st.Production))
	for k, v := range st.Production {
		out.Production[k] = v
	}
	out.Upgrades = make(map[Upgrade]bool, len(st.Upgrades))
	for k, v := range st.Upgrades {
		out.Upgrades[k] = v
	}
	out.Achievements = make(map[string]bool, len(st.Achievements))
	for k, v := range st.Achievements {
		out.Achievements[k] = v
	}
	out.Quests = make(map[QuestID]*Quest, len(st.Quests))
	for k, v := range st.Quests {
		q := *v
		out.Quests[k] = &q
	}
	return &out
}
