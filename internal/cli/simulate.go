package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/config"
	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/inventory"
	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/report"
	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/shop"
	"github.com/if23b108/GildedRose-Refactoring-Kata/internal/telemetry"
)

var errDaysTwice = errors.New("give the day count either as an argument or with --days, not both")

type simulateOptions struct {
	configPath string
	envFile    string
	stats      bool

	// days is only applied when daysSet; zero days is a valid request.
	days    int
	daysSet bool
}

func newSimulateCmd(logger *log.Logger) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate [days]",
		Short: "Print the stock for each simulated day.",
		Long: `Print the stock for each simulated day. The day count comes from, in ` +
			`order of precedence: the argument or --days, GILDEDROSE_DAYS, the ` +
			`config file, then the default of 2.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.daysSet = cmd.Flags().Changed("days")
			if len(args) == 1 {
				if opts.daysSet {
					return errDaysTwice
				}
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("days must be an integer: %q", args[0])
				}
				opts.days, opts.daysSet = n, true
			}
			if opts.daysSet && opts.days < 0 {
				return fmt.Errorf("%w: %d", config.ErrInvalidDays, opts.days)
			}
			return runSimulate(cmd, opts, logger)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a YAML shop file")
	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "optional .env file")
	cmd.Flags().IntVar(&opts.days, "days", 0, "number of days to print (default from config)")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print tick and expiry counts after the run")
	return cmd
}

func loadConfig(opts *simulateOptions) (*config.Config, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	path := opts.configPath
	if path == "" {
		path = config.PathFromEnv()
	}

	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	config.FromEnv(cfg)
	if opts.daysSet {
		cfg.Simulation.Days = opts.days
	}
	return cfg, nil
}

func runSimulate(cmd *cobra.Command, opts *simulateOptions, logger *log.Logger) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	cat, err := cfg.BuildCatalog()
	if err != nil {
		return err
	}

	repo := inventory.NewMemoryRepo()
	if _, err := repo.Add(ctx, cfg.Items...); err != nil {
		return err
	}

	clock := shop.RealClock{}
	start := clock.Now()
	events := telemetry.NewMemoryRepository(clock.Now)

	s := &shop.Shop{
		Items:   repo,
		Catalog: cat,
		Events:  events,
		Clock:   clock,
		Logger:  logger,
	}

	out := cmd.OutOrStdout()
	for day := 0; day < cfg.Simulation.Days; day++ {
		entries, err := repo.List(ctx)
		if err != nil {
			return err
		}
		if err := report.WriteDay(out, day, inventory.Items(entries)); err != nil {
			return err
		}
		if _, err := s.DayTick(ctx); err != nil {
			return err
		}
	}

	if !opts.stats {
		return nil
	}
	evs, err := events.GetEvents(start, nil)
	if err != nil {
		return err
	}
	stats, err := telemetry.CalculateStats(evs, start)
	if err != nil {
		return err
	}
	return stats.Write(out)
}
