// Package save persists game state to per-slot JSON snapshot files and
// imports the old line-oriented text save format.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"citysim/internal/game"

	"github.com/google/uuid"
)

const (
	NumSlots       = 3
	LegacyFileName = "city_save.txt"
)

var (
	ErrSlotNotFound   = errors.New("save slot not found")
	ErrLegacyNotFound = errors.New("legacy save not found")
	ErrBadSlot        = errors.New("slot index out of range")
)

// Snapshot is the on-disk form of a game state: one flat record per slot,
// always a full snapshot, never a diff. Achievements are stored as a sorted
// list for stable output.
type Snapshot struct {
	ID             string                       `json:"id"`
	SavedAt        time.Time                    `json:"saved_at"`
	PlayerName     string                       `json:"playername"`
	Day            int                          `json:"day"`
	Money          int                          `json:"money"`
	Population     int                          `json:"population"`
	Happiness      int                          `json:"happiness"`
	Wood           int                          `json:"wood"`
	Stone          int                          `json:"stone"`
	Manager        string                       `json:"manager"`
	ManagerBonus   int                          `json:"manager_bonus"`
	Buildings      map[game.Building]int        `json:"buildings"`
	Production     map[game.Building]int        `json:"production"`
	ResearchPoints int                          `json:"research_points"`
	Upgrades       map[game.Upgrade]bool        `json:"upgrades"`
	Achievements   []string                     `json:"achievements"`
	Quests         map[game.QuestID]questRecord `json:"quests"`
	PrestigePoints int                          `json:"prestige_points"`
}

type questRecord struct {
	Description string      `json:"desc"`
	Done        bool        `json:"done"`
	Reward      game.Reward `json:"reward"`
}

// Encode flattens a state into a freshly stamped snapshot.
func Encode(st *game.State) Snapshot {
	snap := Snapshot{
		ID:             uuid.NewString(),
		SavedAt:        time.Now().UTC(),
		PlayerName:     st.PlayerName,
		Day:            st.Day,
		Money:          st.Money,
		Population:     st.Population,
		Happiness:      st.Happiness,
		Wood:           st.Wood,
		Stone:          st.Stone,
		Manager:        st.Manager,
		ManagerBonus:   st.ManagerBonus,
		Buildings:      make(map[game.Building]int, len(st.Buildings)),
		Production:     make(map[game.Building]int, len(st.Production)),
		ResearchPoints: st.ResearchPoints,
		Upgrades:       make(map[game.Upgrade]bool, len(st.Upgrades)),
		Achievements:   make([]string, 0, len(st.Achievements)),
		Quests:         make(map[game.QuestID]questRecord, len(st.Quests)),
		PrestigePoints: st.PrestigePoints,
	}
	for k, v := range st.Buildings {
		snap.Buildings[k] = v
	}
	for k, v := range st.Production {
		snap.Production[k] = v
	}
	for k, v := range st.Upgrades {
		snap.Upgrades[k] = v
	}
	for id, earned := range st.Achievements {
		if earned {
			snap.Achievements = append(snap.Achievements, id)
		}
	}
	sort.Strings(snap.Achievements)
	for id, q := range st.Quests {
		snap.Quests[id] = questRecord{Description: q.Description, Done: q.Done, Reward: q.Reward}
	}
	return snap
}

// State converts the snapshot back into a normalized game state.
func (snap Snapshot) State() *game.State {
	st := &game.State{
		PlayerName:     snap.PlayerName,
		Day:            snap.Day,
		Money:          snap.Money,
		Population:     snap.Population,
		Happiness:      snap.Happiness,
		Wood:           snap.Wood,
		Stone:          snap.Stone,
		Manager:        snap.Manager,
		ManagerBonus:   snap.ManagerBonus,
		Buildings:      make(map[game.Building]int, len(snap.Buildings)),
		Production:     make(map[game.Building]int, len(snap.Production)),
		ResearchPoints: snap.ResearchPoints,
		Upgrades:       make(map[game.Upgrade]bool, len(snap.Upgrades)),
		Achievements:   make(map[string]bool, len(snap.Achievements)),
		Quests:         make(map[game.QuestID]*game.Quest, len(snap.Quests)),
		PrestigePoints: snap.PrestigePoints,
	}
	for k, v := range snap.Buildings {
		st.Buildings[k] = v
	}
	for k, v := range snap.Production {
		st.Production[k] = v
	}
	for k, v := range snap.Upgrades {
		st.Upgrades[k] = v
	}
	for _, id := range snap.Achievements {
		st.Achievements[id] = true
	}
	for id, q := range snap.Quests {
		st.Quests[id] = &game.Quest{Description: q.Description, Done: q.Done, Reward: q.Reward}
	}
	st.Normalize()
	return st
}

// Decode parses a snapshot, falling back to fresh-state defaults for every
// field the record does not carry. Buildings, production, upgrades and quests
// merge over the defaults rather than replacing them, so saves written before
// a kind existed still load with correct values for the new kind.
func Decode(raw []byte) (*game.State, error) {
	snap := Encode(game.NewState(""))
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("parse save: %w", err)
	}
	return snap.State(), nil
}

// Store reads and writes the three save slots under one directory.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

// SlotPath maps a 1-based slot number to its snapshot file.
func (s *Store) SlotPath(slot int) (string, error) {
	if slot < 1 || slot > NumSlots {
		return "", fmt.Errorf("%w: %d", ErrBadSlot, slot)
	}
	return filepath.Join(s.dir, fmt.Sprintf("city_save_slot%d.json", slot)), nil
}

// Save writes a full snapshot of st to the given slot.
func (s *Store) Save(slot int, st *game.State) error {
	path, err := s.SlotPath(slot)
	if err != nil {
		return err
	}
	body, err := json.MarshalIndent(Encode(st), "", "  ")
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if err := os.WriteFile(path, body, 0o600); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// Load reads the given slot back into a state.
func (s *Store) Load(slot int) (*game.State, error) {
	path, err := s.SlotPath(slot)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: slot %d", ErrSlotNotFound, slot)
		}
		return nil, fmt.Errorf("read save: %w", err)
	}
	return Decode(raw)
}

// LegacyPath is where the old text-format save is expected.
func (s *Store) LegacyPath() string {
	return filepath.Join(s.dir, LegacyFileName)
}

// ImportLegacy overlays the recognized key=value assignments from the old
// text format onto st. Lines without '=' are skipped, as are assignments
// whose value fails to parse; unrecognized keys and all other state are left
// untouched.
func ImportLegacy(path string, st *game.State) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrLegacyNotFound, path)
		}
		return fmt.Errorf("read legacy save: %w", err)
	}
	for _, line := range strings.Split(string(raw), "\n") {
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch key {
		case "playername":
			st.PlayerName = val
		case "manager":
			st.Manager = val
		case "day":
			setInt(&st.Day, val)
		case "money":
			setInt(&st.Money, val)
		case "population":
			setInt(&st.Population, val)
		case "happiness":
			setInt(&st.Happiness, val)
		case "wood":
			setInt(&st.Wood, val)
		case "stone":
			setInt(&st.Stone, val)
		case "workshop":
			if n, err := strconv.Atoi(val); err == nil {
				st.Buildings[game.Workshop] = n
			}
		}
	}
	st.Normalize()
	return nil
}

func setInt(dst *int, val string) {
	if n, err := strconv.Atoi(val); err == nil {
		*dst = n
	}
}
