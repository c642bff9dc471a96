package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"citysim/internal/game"

	"github.com/fatih/color"
)

var (
	stdinReader = bufio.NewReader(os.Stdin)
	accent      = color.New(color.FgCyan, color.Bold)
	success     = color.New(color.FgGreen, color.Bold)
	warn        = color.New(color.FgYellow, color.Bold)
	danger      = color.New(color.FgRed, color.Bold)
	neutral     = color.New(color.FgHiWhite)
)

func printSuccess(msg string) { success.Println(msg) }
func printInfo(msg string)    { neutral.Println(msg) }
func printWarn(msg string)    { warn.Println(msg) }

func renderStatus(st *game.State) {
	accent.Printf("%s (prestige x%.2f)\n", st.PlayerName, game.PrestigeMultiplier(st))
	neutral.Printf("Day %d\n", st.Day)
	neutral.Printf("Money      %d$\n", st.Money)
	neutral.Printf("Population %d\n", st.Population)
	neutral.Printf("Happiness  %d/100\n", st.Happiness)
	neutral.Printf("Wood       %d\n", st.Wood)
	neutral.Printf("Stone      %d\n", st.Stone)
	neutral.Printf("Research   %d\n", st.ResearchPoints)
	neutral.Printf("Manager    %s (+%d%%)\n", st.Manager, st.ManagerBonus)
	neutral.Printf("Prestige   %d pts\n", st.PrestigePoints)
	fmt.Println()
	for _, b := range game.AllBuildings {
		if st.Buildings[b] > 0 {
			neutral.Printf("  %-10s x%d\n", b, st.Buildings[b])
		}
	}
}

func renderDayResult(st *game.State, res game.DayResult) {
	neutral.Printf("Day %d: +%d$, +%d wood, +%d stone\n",
		st.Day, res.Produced.Money, res.Produced.Wood, res.Produced.Stone)
	warn.Printf("  %s\n", res.Event)
	for _, id := range res.Unlocked {
		success.Printf("  Achievement unlocked: %s\n", id)
	}
	for _, id := range res.CompletedIDs {
		success.Printf("  Quest completed: %s\n", id)
	}
}

func renderQuests(st *game.State) {
	accent.Println("Quests")
	for id, q := range st.Quests {
		status := "active"
		if q.Done {
			status = "done"
		}
		neutral.Printf("  [%s] %s: %s\n", status, id, q.Description)
	}
}

func renderAchievements(st *game.State) {
	accent.Println("Achievements")
	if len(st.Achievements) == 0 {
		neutral.Println("  none yet")
		return
	}
	for id := range st.Achievements {
		success.Printf("  %s\n", id)
	}
}

func renderManagerCatalog() {
	accent.Println("Manager offers")
	for i, m := range game.ManagerCatalog {
		neutral.Printf("  %d) %-8s %-12s bonus %d%%  cost %d$\n", i, m.Name, m.Role, m.BonusPct, m.Cost)
	}
}

func renderUpgradeCatalog(st *game.State) {
	accent.Println("Upgrades")
	for _, u := range game.UpgradeCatalog {
		owned := " "
		if st.Upgrades[u.ID] {
			owned = "x"
		}
		neutral.Printf("  [%s] %-20s %-20s %d research\n", owned, u.ID, u.Name, u.Cost)
	}
}

func renderBuildCatalog(st *game.State) {
	accent.Println("Buildings")
	for _, b := range game.AllBuildings {
		cost, err := game.ConstructionCost(st, b)
		if err != nil {
			continue
		}
		neutral.Printf("  %-10s x%-3d  %d$ / %dw / %ds\n", b, st.Buildings[b], cost.Money, cost.Wood, cost.Stone)
	}
}

func promptRequired(label string) (string, error) {
	for {
		accent.Printf("%s: ", label)
		line, err := stdinReader.ReadString('\n')
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		printWarn("Value required.")
	}
}

func promptInt(label string, minValue int) (int, error) {
	for {
		raw, err := promptRequired(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < minValue {
			printWarn(fmt.Sprintf("Enter a number >= %d.", minValue))
			continue
		}
		return v, nil
	}
}

func promptYes(label string) (bool, error) {
	accent.Printf("%s [y/N]: ", label)
	line, err := stdinReader.ReadString('\n')
	if err != nil {
		return false, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}
