package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pathakanu/rewardsHub/internal/analytics"
	"github.com/pathakanu/rewardsHub/internal/assistant"
	"github.com/pathakanu/rewardsHub/internal/config"
	"github.com/pathakanu/rewardsHub/internal/model"
	"github.com/pathakanu/rewardsHub/internal/store"
	"github.com/spf13/cobra"
)

var (
	userColor   = color.New(color.Bold)
	aiColor     = color.New(color.FgCyan)
	actionColor = color.New(color.FgGreen)
	highColor   = color.New(color.FgRed, color.Bold)
	mediumColor = color.New(color.FgYellow)
	lowColor    = color.New(color.FgBlue)
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the rewards assistant a question",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			question := strings.Join(args, " ")
			if strings.TrimSpace(question) == "" {
				cobra.CheckErr(assistant.ErrEmptyMessage)
			}
			reply := assistant.SelectResponse(question)

			userColor.Printf("-> %s\n\n", question)
			aiColor.Println(reply.Text)
			for _, action := range reply.QuickActions {
				actionColor.Printf("  [%s] %s\n", action.Label, action.Route)
			}
		},
	}
}

func newRemindersCmd(cfg *config.Config) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "List active reminders, most urgent first",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			db, err := openSeeded(cfg)
			cobra.CheckErr(err)

			reminders, err := store.NewReminders(db, cfg.SnoozePeriod, cfg.LocalTimezone).Active(context.Background(), filter)
			cobra.CheckErr(err)
			if len(reminders) == 0 {
				fmt.Println("No reminders.")
				return
			}
			for _, r := range reminders {
				urgencyColor(r.Urgency).Printf("%-6s", r.Urgency)
				fmt.Printf(" %3dd  %s (%s)\n", r.DaysUntilDue, r.Title, r.CardName)
				fmt.Printf("             %s\n", r.Description)
			}
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "reminder kind: expiry, category or offer")
	return cmd
}

func newOffersCmd(cfg *config.Config) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "offers",
		Short: "List merchant offers, most urgent first",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			db, err := openSeeded(cfg)
			cobra.CheckErr(err)

			offers, err := store.NewOffers(db).List(context.Background(), filter)
			cobra.CheckErr(err)
			if len(offers) == 0 {
				fmt.Printf("No offers match %q.\n", filter)
				return
			}
			for _, o := range offers {
				urgencyColor(o.Urgency).Printf("%-6s", o.Urgency)
				fmt.Printf(" %3dd  %s: %s (%s, %s)\n", o.DaysUntilExpiry, o.Merchant, o.Reward, o.CardName, o.Category)
			}
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", `"All Offers", "Expiring Soon", "New" or a category`)
	return cmd
}

func newExportAnalyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-analytics",
		Short: "Write the category spend report as CSV to stdout",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cobra.CheckErr(analytics.WriteCSV(os.Stdout, analytics.CategorySpendData()))
		},
	}
}

func urgencyColor(u model.Urgency) *color.Color {
	switch u {
	case model.UrgencyHigh:
		return highColor
	case model.UrgencyMedium:
		return mediumColor
	default:
		return lowColor
	}
}
