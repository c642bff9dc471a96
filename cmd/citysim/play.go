package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"citysim/internal/config"
	"citysim/internal/game"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newPlayCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Interactive terminal session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newPlayModel(sess), tea.WithAltScreen()).Run()
			return err
		},
	}
}

type tickMsg time.Time

type promptKind int

const (
	promptNone promptKind = iota
	promptSell
	promptBuy
	promptTax
	promptHire
	promptUpgrade
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	eventStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const maxLogLines = 100

type playModel struct {
	sess   *session
	input  textinput.Model
	prompt promptKind
	log    []string
	auto   bool
}

func newPlayModel(sess *session) playModel {
	in := textinput.New()
	in.CharLimit = 32
	in.Width = 24
	return playModel{
		sess: sess,
		input: in,
		log:  []string{fmt.Sprintf("Welcome back to %s.", sess.st.PlayerName)},
	}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func autoTick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *playModel) say(line string) {
	m.log = append(m.log, fmt.Sprintf("[day %d] %s", m.sess.st.Day, line))
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}
}

func (m *playModel) endDay() {
	res := m.sess.svc.AdvanceDay(m.sess.st)
	m.say(fmt.Sprintf("Production: +%d$, +%dw, +%ds. %s",
		res.Produced.Money, res.Produced.Wood, res.Produced.Stone, res.Event))
	for _, id := range res.Unlocked {
		m.say("Achievement unlocked: " + id)
	}
	for _, id := range res.CompletedIDs {
		m.say("Quest completed: " + string(id))
	}
	if m.sess.cfg.AutoSave {
		if err := m.sess.persist(); err != nil {
			m.say(errStyle.Render("Save failed: " + err.Error()))
		}
	}
}

func (m *playModel) openPrompt(kind promptKind, placeholder string) {
	m.prompt = kind
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
}

func (m *playModel) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.auto {
			return m, nil
		}
		m.endDay()
		return m, autoTick(m.sess.cfg.AutoDayEvery)
	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m playModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if err := m.sess.persist(); err != nil {
			m.say(errStyle.Render("Save failed: " + err.Error()))
			return m, nil
		}
		return m, tea.Quit
	case "d":
		m.endDay()
	case "a":
		m.auto = !m.auto
		if m.auto {
			m.say("Auto-day ON.")
			return m, autoTick(m.sess.cfg.AutoDayEvery)
		}
		m.say("Auto-day OFF.")
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		kind := game.AllBuildings[idx]
		if err := m.sess.svc.Construct(m.sess.st, kind); err != nil {
			m.say(errStyle.Render(err.Error()))
			break
		}
		m.say(fmt.Sprintf("Built %s (now %d).", kind, m.sess.st.Buildings[kind]))
	case "s":
		m.openPrompt(promptSell, "wood 100")
	case "b":
		m.openPrompt(promptBuy, "stone 50")
	case "t":
		m.openPrompt(promptTax, "250")
	case "h":
		m.openPrompt(promptHire, "offer 0-3")
	case "u":
		m.openPrompt(promptUpgrade, "better_tools")
	case "f":
		if err := m.sess.svc.HoldFestival(m.sess.st); err != nil {
			m.say(errStyle.Render(err.Error()))
			break
		}
		m.say("Festival held: -200$, +20 happiness.")
	case "p":
		pts, err := m.sess.svc.Prestige(m.sess.st)
		if err != nil {
			m.say(errStyle.Render(err.Error()))
			break
		}
		m.say(fmt.Sprintf("Prestige! +%d points (total %d).", pts, m.sess.st.PrestigePoints))
	}
	return m, nil
}

func (m playModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil
	case "enter":
		m.runPrompt(strings.TrimSpace(m.input.Value()))
		m.closePrompt()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *playModel) runPrompt(value string) {
	switch m.prompt {
	case promptSell, promptBuy:
		fields := strings.Fields(value)
		if len(fields) != 2 {
			m.say(errStyle.Render("Expected: <wood|stone> <qty>"))
			return
		}
		res, err := parseResource(fields[0])
		if err != nil {
			m.say(errStyle.Render(err.Error()))
			return
		}
		qty, err := strconv.Atoi(fields[1])
		if err != nil {
			m.say(errStyle.Render("Bad quantity."))
			return
		}
		if m.prompt == promptSell {
			price, err := m.sess.svc.SellResource(m.sess.st, res, qty)
			if err != nil {
				m.say(errStyle.Render(err.Error()))
				return
			}
			m.say(fmt.Sprintf("Sold %d %s for %d$.", qty, res, price))
			return
		}
		price, err := m.sess.svc.BuyResource(m.sess.st, res, qty)
		if err != nil {
			m.say(errStyle.Render(err.Error()))
			return
		}
		m.say(fmt.Sprintf("Bought %d %s for %d$.", qty, res, price))
	case promptTax:
		amount, err := strconv.Atoi(value)
		if err != nil {
			m.say(errStyle.Render("Bad amount."))
			return
		}
		lost, err := m.sess.svc.CollectTaxes(m.sess.st, amount)
		if err != nil {
			m.say(errStyle.Render(err.Error()))
			return
		}
		m.say(fmt.Sprintf("Collected %d$ in taxes (-%d happiness).", amount, lost))
	case promptHire:
		choice, err := strconv.Atoi(value)
		if err != nil {
			m.say(errStyle.Render("Bad offer number."))
			return
		}
		offer, err := m.sess.svc.HireManager(m.sess.st, choice)
		if err != nil {
			m.say(errStyle.Render(err.Error()))
			return
		}
		m.say(fmt.Sprintf("Hired %s for %d$.", offer.Name, offer.Cost))
	case promptUpgrade:
		id := game.Upgrade(strings.ToLower(value))
		for _, offer := range game.UpgradeCatalog {
			if offer.ID != id {
				continue
			}
			if m.sess.st.Upgrades[id] {
				m.say("Upgrade already owned.")
				return
			}
			if err := m.sess.svc.PurchaseUpgrade(m.sess.st, id, offer.Cost); err != nil {
				m.say(errStyle.Render(err.Error()))
				return
			}
			m.say(fmt.Sprintf("Purchased %s for %d research.", offer.Name, offer.Cost))
			return
		}
		m.say(errStyle.Render("Unknown upgrade."))
	}
}

func (m playModel) View() string {
	st := m.sess.st

	stats := titleStyle.Render(fmt.Sprintf("%s  (prestige x%.2f)", st.PlayerName, game.PrestigeMultiplier(st))) + "\n"
	stats += fmt.Sprintf("Day        %d\n", st.Day)
	stats += fmt.Sprintf("Money      %d$\n", st.Money)
	stats += fmt.Sprintf("Population %d\n", st.Population)
	stats += fmt.Sprintf("Happiness  %d/100\n", st.Happiness)
	stats += fmt.Sprintf("Wood       %d\n", st.Wood)
	stats += fmt.Sprintf("Stone      %d\n", st.Stone)
	stats += fmt.Sprintf("Research   %d\n", st.ResearchPoints)
	stats += fmt.Sprintf("Manager    %s (+%d%%)\n", st.Manager, st.ManagerBonus)
	stats += fmt.Sprintf("Prestige   %d pts", st.PrestigePoints)

	builds := titleStyle.Render("Buildings") + "\n"
	for i, b := range game.AllBuildings {
		cost, _ := game.ConstructionCost(st, b)
		builds += fmt.Sprintf("%d %-10s x%-3d %d$/%dw/%ds\n", i+1, b, st.Buildings[b], cost.Money, cost.Wood, cost.Stone)
	}
	builds = strings.TrimRight(builds, "\n")

	logStart := max(0, len(m.log)-10)
	events := titleStyle.Render("Log") + "\n" + eventStyle.Render(strings.Join(m.log[logStart:], "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(stats),
		panelStyle.Render(builds),
	)

	footer := helpStyle.Render("d day · a auto · 1-9 build · s sell · b buy · t tax · f festival · h hire · u upgrade · p prestige · q quit")
	if m.prompt != promptNone {
		footer = m.input.View() + helpStyle.Render("  (enter to confirm, esc to cancel)")
	}
	if m.auto {
		footer += helpStyle.Render("  [auto]")
	}

	return body + "\n" + panelStyle.Render(events) + "\n" + footer + "\n"
}
