package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Erik-Martinez/jsapy/internal/inputfile"
	"github.com/Erik-Martinez/jsapy/pkg/noise"
)

func newNoiseCommand(a *app) *cobra.Command {
	var (
		file      string
		infAction float64
		supAction float64
		limit     float64
		protected float64
	)

	cmd := &cobra.Command{
		Use:   "noise",
		Short: "Daily noise exposure LAeq,d",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := inputfile.Load(file)
			if err != nil {
				return err
			}
			sec := doc.Noise
			if sec == nil {
				return fmt.Errorf("%s: no noise section", file)
			}
			o := noiseOverrides{infAction: infAction, supAction: supAction, limit: limit}
			if cmd.Flags().Changed("protected") {
				o.protected = &protected
			}
			res, err := noise.AssessNoise(sec.Tasks, a.noiseConfig(sec, o))
			if err != nil {
				return err
			}
			logAdvisories(res.Advisories)
			return a.render(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the assessment input file (YAML)")
	cmd.Flags().Float64Var(&infAction, "inf-action", 0, "Override the inferior action value in dB(A)")
	cmd.Flags().Float64Var(&supAction, "sup-action", 0, "Override the superior action value in dB(A)")
	cmd.Flags().Float64Var(&limit, "limit", 0, "Override the limit value in dB(A)")
	cmd.Flags().Float64Var(&protected, "protected", 0, "Effective level under hearing protection in dB(A)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
