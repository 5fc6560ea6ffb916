package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mindbloom/internal/bootstrap"
	"mindbloom/internal/platform/config"
	apperrors "mindbloom/internal/platform/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "mindbloom",
		Short:         "Mood diary with AI-driven insights",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newEntryCmd(&configPath))
	root.AddCommand(newAnalyticsCmd(&configPath))
	root.AddCommand(newSubscriptionCmd(&configPath))
	return root
}

func loadApp(configPath string) (*bootstrap.App, error) {
	cfg, err := config.New(configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the mindbloom terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newEntryCmd(configPath *string) *cobra.Command {
	entry := &cobra.Command{Use: "entry", Short: "Diary entry commands"}

	var mood, stress int
	var sleep float64
	var activities []string
	var notes string

	add := &cobra.Command{
		Use:   "add --mood <1-10> --sleep <hours> --stress <1-10>",
		Short: "Submit today's diary entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			out, err := app.DiaryCLI.Submit(context.Background(), app.Config.UserID, mood, sleep, stress, activities, notes)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "entry saved: %s mood=%d sleep=%.1f stress=%d\n",
				out.EntryDate.Format("2006-01-02"), out.Mood, out.SleepHours, out.StressLevel)
			return nil
		},
	}
	add.Flags().IntVar(&mood, "mood", 7, "mood score 1-10")
	add.Flags().Float64Var(&sleep, "sleep", 7, "sleep hours in 0.5 steps")
	add.Flags().IntVar(&stress, "stress", 5, "stress level 1-10")
	add.Flags().StringSliceVar(&activities, "activities", nil, "activities: walk|workout|yoga|meditation|reading|none")
	add.Flags().StringVar(&notes, "notes", "", "free-form notes")

	var days int
	var cached bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List recent diary entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			window, err := app.DiaryCLI.ListWindow(ctx, app.Config.UserID, days, 30)
			if err != nil && !cached {
				return err
			}
			if err != nil {
				// Offline fallback: serve the last fetched window.
				window, err = app.DiaryCLI.ListCached(ctx, app.Config.UserID, 30)
				if errors.Is(err, apperrors.ErrInsufficientData) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no entries")
					return nil
				}
				if err != nil {
					return err
				}
				if window.FetchedAt.IsZero() {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "(cached window)")
				} else {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "(cached window from %s)\n", window.FetchedAt.Format("2006-01-02 15:04"))
				}
			}
			if len(window.Entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no entries")
				return nil
			}
			for _, e := range window.Entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tmood=%d\tsleep=%.1f\tstress=%d\t%s\n",
					e.EntryDate.Format("2006-01-02"), e.Mood, e.SleepHours, e.StressLevel, strings.Join(e.Activities, ","))
			}
			return nil
		},
	}
	list.Flags().IntVar(&days, "days", 7, "entry window in days: 7|14|30|90")
	list.Flags().BoolVar(&cached, "cached", false, "fall back to the local window cache when offline")

	entry.AddCommand(add, list)
	return entry
}

func newAnalyticsCmd(configPath *string) *cobra.Command {
	var days int
	analytics := &cobra.Command{
		Use:   "analytics",
		Short: "Show stats, insights and recommendations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			out, err := app.InsightsCLI.GetAnalysis(context.Background(), app.Config.UserID, days)
			if err != nil {
				return err
			}
			if !out.Sufficient {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not enough data yet — add more entries")
				return nil
			}
			if stats := out.Stats; stats != nil {
				trend := "stable"
				if stats.Improving {
					trend = "improving"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "avg mood %.1f (%s)  avg sleep %.1fh (%s)  avg stress %.1f (%s)  entries %d\n",
					stats.AvgMood, trend, stats.AvgSleep, stats.SleepNote, stats.AvgStress, stats.StressNote, stats.TotalEntries)
			}
			for _, insight := range out.Insights {
				marker := "+"
				if !insight.Positive {
					marker = "-"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s (%s)\n    %s\n", marker, insight.Title, insight.Metric, insight.Description)
			}
			for _, rec := range out.Recommendations {
				urgent := ""
				if rec.Urgent {
					urgent = " (important)"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s%s\n    %s\n", rec.Glyph, rec.Title, urgent, rec.Description)
			}
			return nil
		},
	}
	analytics.Flags().IntVar(&days, "days", 30, "analysis window in days: 7|14|30|90")
	return analytics
}

func newSubscriptionCmd(configPath *string) *cobra.Command {
	subscription := &cobra.Command{Use: "subscription", Short: "Subscription lifecycle"}

	subscription.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show subscription status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			out, err := app.SubscriptionCLI.Status(context.Background(), app.Config.UserID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plan=%s status=%s access=%t days_left=%d badge=%s cta=%s\n",
				out.Plan, out.Lifecycle, out.HasAccess, out.DaysLeft, out.Badge, out.CTA)
			if out.InvariantNote != "" {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: "+out.InvariantNote)
			}
			return nil
		},
	})

	subscription.AddCommand(&cobra.Command{
		Use:   "activate",
		Short: "Activate the pro subscription",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			out, err := app.SubscriptionCLI.Activate(context.Background(), app.Config.UserID)
			if err != nil {
				return err
			}
			if !out.Success {
				return fmt.Errorf("activation was not accepted")
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "activated: plan=%s status=%s days_left=%d\n",
				out.Status.Plan, out.Status.Lifecycle, out.Status.DaysLeft)
			return nil
		},
	})

	return subscription
}
