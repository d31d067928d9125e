package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Erik-Martinez/jsapy/internal/inputfile"
	"github.com/Erik-Martinez/jsapy/pkg/vibration"
)

func newVibrationCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vibration",
		Short: "Assess vibration exposure from an input file",
	}
	cmd.AddCommand(newHandArmCommand(a), newWholeBodyCommand(a))
	return cmd
}

func newHandArmCommand(a *app) *cobra.Command {
	var (
		file   string
		action float64
		limit  float64
	)

	cmd := &cobra.Command{
		Use:   "hand-arm",
		Short: "Daily hand-arm vibration exposure A(8)",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := inputfile.Load(file)
			if err != nil {
				return err
			}
			sec := doc.HandArm
			if sec == nil {
				return fmt.Errorf("%s: no hand_arm section", file)
			}
			res, err := vibration.AssessHandArm(sec.Machines, a.handArmConfig(sec, action, limit))
			if err != nil {
				return err
			}
			logAdvisories(res.Advisories)
			return a.render(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the assessment input file (YAML)")
	cmd.Flags().Float64Var(&action, "action", 0, "Override the exposure action value in m/s²")
	cmd.Flags().Float64Var(&limit, "limit", 0, "Override the exposure limit value in m/s²")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newWholeBodyCommand(a *app) *cobra.Command {
	var (
		file   string
		action float64
		limit  float64
	)

	cmd := &cobra.Command{
		Use:   "whole-body",
		Short: "Daily whole-body vibration exposure A(8)",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := inputfile.Load(file)
			if err != nil {
				return err
			}
			sec := doc.WholeBody
			if sec == nil {
				return fmt.Errorf("%s: no whole_body section", file)
			}
			res, err := vibration.AssessWholeBody(sec.Machines, a.wholeBodyConfig(sec, action, limit))
			if err != nil {
				return err
			}
			logAdvisories(res.Advisories)
			return a.render(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the assessment input file (YAML)")
	cmd.Flags().Float64Var(&action, "action", 0, "Override the exposure action value in m/s²")
	cmd.Flags().Float64Var(&limit, "limit", 0, "Override the exposure limit value in m/s²")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
