package main

import (
	"fmt"
	"io"
	"os"

	"github.com/blackout-luminera/guild-xp-ranking/internal/adapter"
	"github.com/blackout-luminera/guild-xp-ranking/internal/app"
	"github.com/blackout-luminera/guild-xp-ranking/internal/config"
	"github.com/blackout-luminera/guild-xp-ranking/internal/domain"
	"github.com/blackout-luminera/guild-xp-ranking/internal/util"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootFlags struct {
	guild    string
	world    string
	topN     int
	output   string
	logLevel string
	noReport bool
	showTop  int
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "ranking",
		Short:         "Builds the guild experience ranking snapshot.",
		Long:          "Fetches the guild roster and experience table, merges them by character name and writes the yesterday, 7 day and 30 day leaderboards as JSON.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			applyFlags(cmd, flags, cfg)
			if err := cfg.Validate(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return run(cmd, cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.guild, "guild", "", "guild name (overrides GUILD_NAME)")
	cmd.Flags().StringVar(&flags.world, "world", "", "game world (overrides GUILD_WORLD)")
	cmd.Flags().IntVar(&flags.topN, "top", 0, "entries kept per ranking (overrides RANKING_TOP_N)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "snapshot path (overrides OUTPUT_PATH)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
	cmd.Flags().BoolVar(&flags.noReport, "no-report", false, "do not print the ranking tables")
	cmd.Flags().IntVar(&flags.showTop, "show", 10, "entries printed per ranking in the report, 0 for all")

	return cmd
}

func applyFlags(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	if cmd.Flags().Changed("guild") {
		cfg.Guild.Name = flags.guild
	}
	if cmd.Flags().Changed("world") {
		cfg.Guild.World = flags.world
	}
	if cmd.Flags().Changed("top") {
		cfg.Ranking.TopN = flags.topN
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Path = flags.output
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
}

func run(cmd *cobra.Command, cfg *config.Config, flags *rootFlags) error {
	logger, err := util.NewLogger(util.LoggerOptions{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.File,
		RunID: uuid.NewString(),
	})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Failed to initialize logger: %v\n", err)
		return err
	}
	defer logger.Sync()

	container, err := app.Build(cmd.Context(), cfg, logger)
	if err != nil {
		logger.Error("Failed to assemble pipeline", zap.Error(err))
		return err
	}
	defer container.Close()

	result, err := container.Pipeline.Run(cmd.Context())
	if err != nil {
		logger.Error("Ranking update failed", zap.Error(err))
		return err
	}

	if !flags.noReport {
		printReport(cmd.OutOrStdout(), result, adapter.NewReportFormatter(flags.showTop))
	}

	logger.Info("Ranking update completed",
		zap.String("path", result.Path),
		zap.Int("total_members", result.Snapshot.TotalMembers))
	return nil
}

func printReport(w io.Writer, result *app.Result, formatter *adapter.ReportFormatter) {
	if w == nil {
		w = os.Stdout
	}
	for _, metric := range domain.Metrics {
		fmt.Fprintln(w, formatter.FormatRanking(metric, result.Snapshot.Rankings.For(metric)))
	}
	if unmatched := formatter.FormatUnmatched(result.Unmatched, result.Suggestions); unmatched != "" {
		fmt.Fprintln(w, unmatched)
	}
	fmt.Fprintln(w, formatter.FormatSummary(result.Snapshot, result.Path))
}
