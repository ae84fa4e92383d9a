package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/macrolog/internal/services"
)

func newBMRCommand(rt *runtime) *cobra.Command {
	profile := services.EnergyProfile{}
	levels := make([]string, 0, len(services.ActivityFactors))
	for level := range services.ActivityFactors {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	cmd := &cobra.Command{
		Use:   "bmr",
		Short: "Calculate BMR and daily calorie targets (Mifflin-St Jeor)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.CalculateEnergy(profile)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMR: %g kcal\n", result.BMR)
			fmt.Fprintf(out, "Maintenance: %g kcal\n", result.Maintenance)
			fmt.Fprintf(out, "Weight loss: %g kcal\n", result.WeightLoss)
			fmt.Fprintf(out, "Bulking: %g kcal\n", result.Bulking)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&profile.Age, "age", 0, "age in years")
	flags.StringVar(&profile.Sex, "sex", services.SexMale, "male or female")
	flags.Float64Var(&profile.WeightKg, "weight", 0, "weight in kg")
	flags.Float64Var(&profile.HeightCm, "height", 0, "height in cm")
	flags.StringVar(&profile.ActivityLevel, "activity", "sedentary", "activity level: "+strings.Join(levels, ", "))
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}
