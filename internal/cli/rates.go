package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Erik-Martinez/jsapy/pkg/accident"
)

func newRatesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Calculate accident rate statistics",
	}
	cmd.AddCommand(
		newFrequencyCommand(a),
		newIncidenceCommand(a),
		newSeverityCommand(a),
		newLostDaysCommand(a),
		newSafetyCommand(a),
	)
	return cmd
}

func newFrequencyCommand(a *app) *cobra.Command {
	var (
		accidents string
		hours     string
		factor    float64
	)

	cmd := &cobra.Command{
		Use:   "frequency",
		Short: "Accidents per million work hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := parseSeries(accidents)
			if err != nil {
				return fmt.Errorf("--accidents: %w", err)
			}
			hrs, err := parseSeries(hours)
			if err != nil {
				return fmt.Errorf("--hours-worked: %w", err)
			}
			res, err := accident.FrequencyRate(acc, hrs, factor)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&accidents, "accidents", "", "Accident counts, comma separated")
	cmd.Flags().StringVar(&hours, "hours-worked", "", "Work hours, comma separated")
	cmd.Flags().Float64Var(&factor, "factor", 0, "Override the rate factor")
	_ = cmd.MarkFlagRequired("accidents")
	_ = cmd.MarkFlagRequired("hours-worked")

	return cmd
}

func newIncidenceCommand(a *app) *cobra.Command {
	var (
		accidents string
		workers   string
		factor    float64
	)

	cmd := &cobra.Command{
		Use:   "incidence",
		Short: "Accidents per hundred thousand workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := parseSeries(accidents)
			if err != nil {
				return fmt.Errorf("--accidents: %w", err)
			}
			wrk, err := parseSeries(workers)
			if err != nil {
				return fmt.Errorf("--workers: %w", err)
			}
			res, err := accident.IncidenceRate(acc, wrk, factor)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&accidents, "accidents", "", "Accident counts, comma separated")
	cmd.Flags().StringVar(&workers, "workers", "", "Exposed workers, comma separated")
	cmd.Flags().Float64Var(&factor, "factor", 0, "Override the rate factor")
	_ = cmd.MarkFlagRequired("accidents")
	_ = cmd.MarkFlagRequired("workers")

	return cmd
}

func newSeverityCommand(a *app) *cobra.Command {
	var (
		daysLost string
		hours    string
		factor   float64
	)

	cmd := &cobra.Command{
		Use:   "severity",
		Short: "Work days lost per hundred thousand work hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseSeries(daysLost)
			if err != nil {
				return fmt.Errorf("--days-lost: %w", err)
			}
			hrs, err := parseSeries(hours)
			if err != nil {
				return fmt.Errorf("--hours-worked: %w", err)
			}
			res, err := accident.SeverityRate(days, hrs, factor)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&daysLost, "days-lost", "", "Work days lost, comma separated")
	cmd.Flags().StringVar(&hours, "hours-worked", "", "Work hours, comma separated")
	cmd.Flags().Float64Var(&factor, "factor", 0, "Override the rate factor")
	_ = cmd.MarkFlagRequired("days-lost")
	_ = cmd.MarkFlagRequired("hours-worked")

	return cmd
}

func newLostDaysCommand(a *app) *cobra.Command {
	var (
		accidents string
		hours     string
		daysLost  string
	)

	cmd := &cobra.Command{
		Use:   "lost-days",
		Short: "Work days lost per accident",
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := parseSeries(accidents)
			if err != nil {
				return fmt.Errorf("--accidents: %w", err)
			}
			hrs, err := parseSeries(hours)
			if err != nil {
				return fmt.Errorf("--hours-worked: %w", err)
			}
			days, err := parseSeries(daysLost)
			if err != nil {
				return fmt.Errorf("--days-lost: %w", err)
			}
			res, err := accident.LostDaysRate(acc, hrs, days)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&accidents, "accidents", "", "Accident counts, comma separated")
	cmd.Flags().StringVar(&hours, "hours-worked", "", "Work hours, comma separated")
	cmd.Flags().StringVar(&daysLost, "days-lost", "", "Work days lost, comma separated")
	_ = cmd.MarkFlagRequired("accidents")
	_ = cmd.MarkFlagRequired("hours-worked")
	_ = cmd.MarkFlagRequired("days-lost")

	return cmd
}

func newSafetyCommand(a *app) *cobra.Command {
	var (
		accidents string
		workers   string
		hours     string
		factor    float64
	)

	cmd := &cobra.Command{
		Use:   "safety",
		Short: "Accidents per hundred thousand worker-hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, err := parseSeries(accidents)
			if err != nil {
				return fmt.Errorf("--accidents: %w", err)
			}
			wrk, err := parseSeries(workers)
			if err != nil {
				return fmt.Errorf("--workers: %w", err)
			}
			hrs, err := parseSeries(hours)
			if err != nil {
				return fmt.Errorf("--hours-worked: %w", err)
			}
			res, err := accident.SafetyRate(acc, wrk, hrs, factor)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&accidents, "accidents", "", "Accident counts, comma separated")
	cmd.Flags().StringVar(&workers, "workers", "", "Exposed workers, comma separated")
	cmd.Flags().StringVar(&hours, "hours-worked", "", "Work hours per worker, comma separated")
	cmd.Flags().Float64Var(&factor, "factor", 0, "Override the rate factor")
	_ = cmd.MarkFlagRequired("accidents")
	_ = cmd.MarkFlagRequired("workers")
	_ = cmd.MarkFlagRequired("hours-worked")

	return cmd
}

// parseSeries parses a comma separated list of numbers, e.g. "3,1,0".
func parseSeries(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("empty value in list %q", s)
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}
