package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unclebandit/campaign-insights/internal/generator"
	"github.com/unclebandit/campaign-insights/internal/logger"
	"github.com/unclebandit/campaign-insights/internal/repository"
)

type options struct {
	seed        int64
	out         string
	profile     string
	xlsx        string
	influencers int
	posts       int
	tracking    int
	campaigns   []string
	platforms   []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "generator",
		Short: "Generate a synthetic influencer campaign dataset",
		Long: `Writes influencers.csv, posts.csv, tracking_data.csv and payouts.csv
with consistent influencer ids and payout totals.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&opts.seed, "seed", 0, "random seed (default: current time)")
	f.StringVarP(&opts.out, "out", "o", "./data", "output directory for the csv files")
	f.StringVarP(&opts.profile, "config", "c", "", "YAML profile overriding counts, enumerations and ranges")
	f.StringVar(&opts.xlsx, "xlsx", "", "also write a workbook with one sheet per dataset")
	f.IntVar(&opts.influencers, "influencers", 30, "number of influencers")
	f.IntVar(&opts.posts, "posts", 100, "number of posts")
	f.IntVar(&opts.tracking, "tracking", 500, "number of tracking records")
	f.StringSliceVar(&opts.campaigns, "campaigns", nil, "campaign names")
	f.StringSliceVar(&opts.platforms, "platforms", nil, "platform names")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg := generator.DefaultConfig()
	if opts.profile != "" {
		var err error
		if cfg, err = generator.LoadProfile(opts.profile); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("influencers") {
		cfg.Influencers = opts.influencers
	}
	if flags.Changed("posts") {
		cfg.Posts = opts.posts
	}
	if flags.Changed("tracking") {
		cfg.Tracking = opts.tracking
	}
	if flags.Changed("campaigns") {
		cfg.Campaigns = opts.campaigns
	}
	if flags.Changed("platforms") {
		cfg.Platforms = opts.platforms
		cfg.Sources = opts.platforms
	}
	cfg.Now = time.Now()

	ds, err := generator.Generate(cfg)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := repository.WriteDir(opts.out, ds); err != nil {
		return fmt.Errorf("write csv files: %w", err)
	}
	if opts.xlsx != "" {
		if err := generator.WriteXLSX(opts.xlsx, ds); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
	}

	logger.Info("dataset generated",
		zap.Int64("seed", cfg.Seed),
		zap.String("out", opts.out),
		zap.Int("influencers", len(ds.Influencers)),
		zap.Int("posts", len(ds.Posts)),
		zap.Int("tracking", len(ds.Tracking)),
		zap.Int("payouts", len(ds.Payouts)))
	fmt.Fprintf(cmd.OutOrStdout(), "Synthetic dataset written to %s\n", opts.out)
	return nil
}

func main() {
	defer logger.Sync()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
