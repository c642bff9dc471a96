package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"citysim/internal/config"
	"citysim/internal/game"
	"citysim/internal/save"

	"github.com/spf13/cobra"
)

func main() {
	cfg := config.LoadFromEnv()
	slot := 1

	root := &cobra.Command{
		Use:          "citysim",
		Short:        "Incremental city-building simulation",
		SilenceUsage: true,
	}
	root.PersistentFlags().IntVar(&slot, "slot", 1, "working save slot (1-3)")

	root.AddCommand(
		newNewCmd(cfg, &slot),
		newStatusCmd(cfg, &slot),
		newDayCmd(cfg, &slot),
		newAutoCmd(cfg, &slot),
		newBuildCmd(cfg, &slot),
		newMarketCmd(cfg, &slot),
		newHireCmd(cfg, &slot),
		newUpgradeCmd(cfg, &slot),
		newQuestsCmd(cfg, &slot),
		newAchievementsCmd(cfg, &slot),
		newPrestigeCmd(cfg, &slot),
		newTaxCmd(cfg, &slot),
		newFestivalCmd(cfg, &slot),
		newSaveCmd(cfg, &slot),
		newLoadCmd(cfg, &slot),
		newImportCmd(cfg, &slot),
		newPlayCmd(cfg, &slot),
	)

	if err := root.Execute(); err != nil {
		danger.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// session ties the working slot's state to the store it came from.
type session struct {
	cfg   config.Config
	store *save.Store
	svc   *game.Service
	slot  int
	st    *game.State
}

func openSession(cfg config.Config, slot int) (*session, error) {
	store, err := save.NewStore(cfg.SaveDir)
	if err != nil {
		return nil, err
	}
	st, err := store.Load(slot)
	if err != nil {
		if !errors.Is(err, save.ErrSlotNotFound) {
			return nil, err
		}
		st = game.NewState(cfg.CityName)
	}
	return &session{cfg: cfg, store: store, svc: game.NewService(nil), slot: slot, st: st}, nil
}

func (s *session) persist() error {
	return s.store.Save(s.slot, s.st)
}

func newNewCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "new [name]",
		Short: "Start a fresh city in the working slot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := cfg.CityName
			if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
				name = strings.TrimSpace(args[0])
			}
			store, err := save.NewStore(cfg.SaveDir)
			if err != nil {
				return err
			}
			st := game.NewState(name)
			if err := store.Save(*slot, st); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("New game %q saved to slot %d.", name, *slot))
			return nil
		},
	}
}

func newStatusCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the city",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			renderStatus(sess.st)
			return nil
		},
	}
}

func newDayCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "day [n]",
		Short: "Advance one or more days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1
			if len(args) > 0 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v < 1 {
					return fmt.Errorf("invalid day count %q", args[0])
				}
				n = v
			}
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			for i := 0; i < n; i++ {
				res := sess.svc.AdvanceDay(sess.st)
				renderDayResult(sess.st, res)
			}
			return sess.persist()
		},
	}
}

func newAutoCmd(cfg config.Config, slot *int) *cobra.Command {
	var every time.Duration
	var days int
	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Advance days on a timer until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
			store, err := save.NewStore(cfg.SaveDir)
			if err != nil {
				return err
			}
			st, err := store.Load(*slot)
			if err != nil {
				if !errors.Is(err, save.ErrSlotNotFound) {
					return err
				}
				st = game.NewState(cfg.CityName)
			}
			svc := game.NewService(logger)

			ticker := time.NewTicker(every)
			defer ticker.Stop()
			advanced := 0
			for {
				select {
				case <-ctx.Done():
					if err := store.Save(*slot, st); err != nil {
						return err
					}
					logger.Info("auto-day stopped", "days", advanced, "slot", *slot)
					return nil
				case <-ticker.C:
					res := svc.AdvanceDay(st)
					logger.Info("day ended",
						"day", st.Day,
						"money", res.Produced.Money,
						"wood", res.Produced.Wood,
						"stone", res.Produced.Stone,
						"event", res.Event,
					)
					if cfg.AutoSave {
						if err := store.Save(*slot, st); err != nil {
							return err
						}
					}
					advanced++
					if days > 0 && advanced >= days {
						if err := store.Save(*slot, st); err != nil {
							return err
						}
						logger.Info("auto-day finished", "days", advanced, "slot", *slot)
						return nil
					}
				}
			}
		},
	}
	cmd.Flags().DurationVar(&every, "every", cfg.AutoDayEvery, "interval between days")
	cmd.Flags().IntVar(&days, "days", 0, "stop after this many days (0 = run until interrupted)")
	return cmd
}

func newBuildCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "build [kind]",
		Short: "Construct a building",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				renderBuildCatalog(sess.st)
				return nil
			}
			kind := game.Building(strings.ToLower(strings.TrimSpace(args[0])))
			if err := sess.svc.Construct(sess.st, kind); err != nil {
				return err
			}
			if err := sess.persist(); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Built %s. Now %d.", kind, sess.st.Buildings[kind]))
			return nil
		},
	}
}

func parseResource(arg string) (game.Resource, error) {
	res := game.Resource(strings.ToLower(strings.TrimSpace(arg)))
	for _, known := range game.AllResources {
		if res == known {
			return res, nil
		}
	}
	return "", fmt.Errorf("unknown resource %q (wood or stone)", arg)
}

func newMarketCmd(cfg config.Config, slot *int) *cobra.Command {
	market := &cobra.Command{
		Use:   "market",
		Short: "Spot-trade wood and stone",
	}
	market.AddCommand(&cobra.Command{
		Use:   "quote <wood|stone> <qty>",
		Short: "Quote buy and sell prices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := parseResource(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil || qty <= 0 {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			neutral.Printf("sell %d %s -> %d$\n", qty, res, game.QuoteSell(res, qty))
			neutral.Printf("buy  %d %s -> %d$\n", qty, res, game.QuoteBuy(res, qty))
			return nil
		},
	})
	market.AddCommand(&cobra.Command{
		Use:   "sell <wood|stone> <qty>",
		Short: "Sell resources for money",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := parseResource(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			price, err := sess.svc.SellResource(sess.st, res, qty)
			if err != nil {
				return err
			}
			if err := sess.persist(); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Sold %d %s for %d$.", qty, res, price))
			return nil
		},
	})
	market.AddCommand(&cobra.Command{
		Use:   "buy <wood|stone> <qty>",
		Short: "Buy resources with money",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := parseResource(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			price, err := sess.svc.BuyResource(sess.st, res, qty)
			if err != nil {
				return err
			}
			if err := sess.persist(); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Bought %d %s for %d$.", qty, res, price))
			return nil
		},
	})
	return market
}

func newHireCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "hire [offer]",
		Short: "Hire a manager",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			choice := -1
			if len(args) > 0 {
				choice, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid offer %q", args[0])
				}
			} else {
				renderManagerCatalog()
				choice, err = promptInt("Offer", 0)
				if err != nil {
					return err
				}
			}
			offer, err := sess.svc.HireManager(sess.st, choice)
			if err != nil {
				return err
			}
			if err := sess.persist(); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Hired %s for %d$.", offer.Name, offer.Cost))
			return nil
		},
	}
}

func newUpgradeCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade [id]",
		Short: "Buy a research upgrade",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				renderUpgradeCatalog(sess.st)
				neutral.Printf("Research points: %d\n", sess.st.ResearchPoints)
				return nil
			}
			id := game.Upgrade(strings.ToLower(strings.TrimSpace(args[0])))
			var offer *game.UpgradeOffer
			for i := range game.UpgradeCatalog {
				if game.UpgradeCatalog[i].ID == id {
					offer = &game.UpgradeCatalog[i]
					break
				}
			}
			if offer == nil {
				return game.ErrUnknownUpgrade
			}
			// The engine would happily charge for a re-purchase; guard here.
			if sess.st.Upgrades[id] {
				printWarn(fmt.Sprintf("Upgrade %s already owned.", id))
				return nil
			}
			if err := sess.svc.PurchaseUpgrade(sess.st, id, offer.Cost); err != nil {
				return err
			}
			if err := sess.persist(); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Purchased %s for %d research.", offer.Name, offer.Cost))
			return nil
		},
	}
}

func newQuestsCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "quests",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			renderQuests(sess.st)
			return nil
		},
	}
}

func newAchievementsCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			renderAchievements(sess.st)
			return nil
		},
	}
}

func newPrestigeCmd(cfg config.Config, slot *int) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "prestige",
		Short: "Reset progress for permanent prestige points",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			pts := game.PrestigeValue(sess.st)
			if pts <= 0 {
				return game.ErrNothingToPrestige
			}
			if !yes {
				ok, err := promptYes(fmt.Sprintf("Prestige grants %d points and resets the city. Continue?", pts))
				if err != nil {
					return err
				}
				if !ok {
					printInfo("Prestige cancelled.")
					return nil
				}
			}
			awarded, err := sess.svc.Prestige(sess.st)
			if err != nil {
				return err
			}
			if err := sess.persist(); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Gained %d prestige points. Total: %d.", awarded, sess.st.PrestigePoints))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newTaxCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "tax <amount>",
		Short: "Collect taxes (costs happiness)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			lost, err := sess.svc.CollectTaxes(sess.st, amount)
			if err != nil {
				return err
			}
			if err := sess.persist(); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Collected %d$ in taxes (-%d happiness).", amount, lost))
			return nil
		},
	}
}

func newFestivalCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "festival",
		Short: "Hold a festival (-200$, +20 happiness)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			if err := sess.svc.HoldFestival(sess.st); err != nil {
				return err
			}
			if err := sess.persist(); err != nil {
				return err
			}
			printSuccess("Festival held: -200$, +20 happiness.")
			return nil
		},
	}
}

func newSaveCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "save <slot>",
		Short: "Copy the working slot into another slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid slot %q", args[0])
			}
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			if err := sess.store.Save(dst, sess.st); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Saved to slot %d.", dst))
			return nil
		},
	}
}

func newLoadCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "load <slot>",
		Short: "Copy another slot into the working slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid slot %q", args[0])
			}
			store, err := save.NewStore(cfg.SaveDir)
			if err != nil {
				return err
			}
			st, err := store.Load(src)
			if err != nil {
				return err
			}
			if err := store.Save(*slot, st); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Loaded slot %d into slot %d.", src, *slot))
			return nil
		},
	}
}

func newImportCmd(cfg config.Config, slot *int) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Import a legacy key=value text save onto the working slot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cfg, *slot)
			if err != nil {
				return err
			}
			path := sess.store.LegacyPath()
			if len(args) > 0 {
				path = args[0]
			}
			if err := save.ImportLegacy(path, sess.st); err != nil {
				return err
			}
			if err := sess.persist(); err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Imported %s into slot %d.", path, *slot))
			return nil
		},
	}
}
