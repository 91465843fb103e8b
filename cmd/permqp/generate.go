package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/permqp/tsp"
)

func newGenerateCmd(log func() *zap.Logger) *cobra.Command {
	var (
		cities int
		seed   int64
		scale  float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a deterministic random Euclidean instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := tsp.RandomEuclidean(cities, seed, scale)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			log().Debug("instance generated",
				zap.String("instance", inst.Name()),
				zap.Int("cities", cities),
				zap.Int64("seed", seed),
			)

			return withOutput(cmd, output, func(w io.Writer) error {
				return tsp.WriteInstance(w, inst)
			})
		},
	}
	cmd.Flags().IntVarP(&cities, "cities", "n", 5, "number of cities")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 selects the default stream)")
	cmd.Flags().Float64Var(&scale, "scale", tsp.DefaultScale, "side of the square holding the cities")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
