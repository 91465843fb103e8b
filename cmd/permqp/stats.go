package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/permqp/tsp"
)

func newStatsCmd(log func() *zap.Logger) *cobra.Command {
	var (
		input          string
		bothDirections bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the size of the model an instance would produce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := loadInstance(cmd, input)
			if err != nil {
				return err
			}
			var opts = []tsp.Option{tsp.WithLogger(log())}
			if bothDirections {
				opts = append(opts, tsp.WithBothDirections())
			}
			model, err := tsp.Build(inst, opts...)
			if err != nil {
				return fmt.Errorf("build model: %w", err)
			}

			var (
				st = model.Stats()
				tw = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			)
			fmt.Fprintf(tw, "instance\t%s\n", inst.Name())
			fmt.Fprintf(tw, "cities\t%d\n", inst.NumCities())
			fmt.Fprintf(tw, "variables\t%d\n", st.Variables)
			fmt.Fprintf(tw, "quadratic terms\t%d\n", st.QuadraticTerms)
			fmt.Fprintf(tw, "constraints\t%d\n", st.Constraints)

			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "instance file (YAML/JSON, \"-\" for stdin)")
	cmd.Flags().BoolVar(&bothDirections, "both-directions", false, "count both orientations per city pair")

	return cmd
}
