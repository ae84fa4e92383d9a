package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/macrolog/internal/models"
	"github.com/terraincognita07/macrolog/internal/services"
)

func newLogCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "log <meal text>",
		Short: "Estimate a meal and add it to today's log",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := rt.openStore()
			if err != nil {
				return err
			}

			entry, dayLog, err := store.meals.LogMeal(strings.Join(args, " "))
			if errors.Is(err, services.ErrEmptyMealText) {
				return nil
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Meal logged: %s (%s)\n", entry.Food, formatNutrients(entry.Nutrients()))
			printDayTotals(out, dayLog.Totals)
			return nil
		},
	}
}

func newTodayCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's meals and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := rt.openStore()
			if err != nil {
				return err
			}
			dayLog, err := store.meals.FetchTodayLog()
			if err != nil {
				return err
			}
			printDayLog(cmd.OutOrStdout(), dayLog)
			return nil
		},
	}
}

func newNewDayCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "new-day",
		Short: "Clear today's log; earlier days are kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := rt.openStore()
			if err != nil {
				return err
			}
			dayLog, err := store.meals.StartNewDay()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started a new day: %s cleared\n", dayLog.Key)
			return nil
		},
	}
}

func newWeekCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show the last seven days and their averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := rt.openStore()
			if err != nil {
				return err
			}
			report, err := store.weekly.BuildWeeklyReport(rt.now())
			if err != nil {
				return err
			}
			printWeeklyReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func newEstimateCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate <meal text>",
		Short: "Estimate a meal without storing it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := rt.foodRules()
			if err != nil {
				return err
			}
			text, err := services.NormalizeMealText(strings.Join(args, " "))
			if err != nil {
				return nil
			}

			estimate := services.NewFoodInterpreter(rules).Estimate(text)
			out := cmd.OutOrStdout()
			for _, match := range estimate.Matches {
				fmt.Fprintf(out, "  %g x %s: %s\n", match.Quantity, match.Keyword, formatNutrients(match.Subtotal))
			}
			if estimate.UsedDefault {
				fmt.Fprintln(out, "  no known food found, using the default estimate")
			}
			fmt.Fprintf(out, "Estimate: %s\n", formatNutrients(estimate.Nutrients))
			return nil
		},
	}
}

func formatNutrients(value models.Nutrients) string {
	return fmt.Sprintf("%g kcal, protein %gg, carbs %gg, fat %gg", value.Calories, value.Protein, value.Carbs, value.Fat)
}

func printDayTotals(out io.Writer, totals services.DailyTotals) {
	fmt.Fprintf(out, "Total for %s: %s (%d entries)\n", totals.Date, formatNutrients(totals.Totals), totals.EntryCount)
}

func printDayLog(out io.Writer, dayLog services.DayLog) {
	fmt.Fprintf(out, "%s\n", dayLog.Date)
	if len(dayLog.Entries) == 0 {
		fmt.Fprintln(out, "  nothing logged yet")
	}
	for index, entry := range dayLog.Entries {
		fmt.Fprintf(out, "  %d. %s: %s\n", index+1, entry.Food, formatNutrients(entry.Nutrients()))
	}
	printDayTotals(out, dayLog.Totals)
}

func printWeeklyReport(out io.Writer, report services.WeeklyReport) {
	fmt.Fprintf(out, "Week %s to %s\n", report.From, report.To)
	for _, day := range report.Days {
		if !day.Logged {
			fmt.Fprintf(out, "  %s %s: -\n", day.Label, day.Date)
			continue
		}
		fmt.Fprintf(out, "  %s %s: %g kcal\n", day.Label, day.Date, day.Totals.Calories)
	}

	stats := report.Stats
	fmt.Fprintf(out, "Days logged: %d\n", stats.DaysLogged)
	fmt.Fprintf(out, "Averages: %g kcal, protein %gg, carbs %gg, fat %gg\n", stats.AvgCalories, stats.AvgProtein, stats.AvgCarbs, stats.AvgFat)
	if stats.HighestCalorieDate == "" {
		fmt.Fprintf(out, "Highest calorie day: %s\n", stats.HighestCalorieDay)
		return
	}
	fmt.Fprintf(out, "Highest calorie day: %s (%s)\n", stats.HighestCalorieDay, stats.HighestCalorieDate)
}
