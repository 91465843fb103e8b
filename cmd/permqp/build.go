package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/permqp/qp"
	"github.com/katalvlaran/permqp/tsp"
)

// Output formats accepted by --format.
const (
	formatLP   = "lp"
	formatYAML = "yaml"
	formatJSON = "json"
)

type buildFlags struct {
	input          string
	output         string
	format         string
	modelName      string
	bothDirections bool
}

func newBuildCmd(log func() *zap.Logger) *cobra.Command {
	var flags = &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the quadratic binary model of an instance",
		Long: `Reads an instance file and writes its model: N² binary variables x_{city}_{stop},
the cyclic adjacency objective and 2N exactly-one constraints.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, flags, log())
		},
	}
	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "instance file (YAML/JSON, \"-\" for stdin)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", formatLP, "output format: lp, yaml or json")
	cmd.Flags().StringVar(&flags.modelName, "name", "", "model name (default: instance name, else TSP)")
	cmd.Flags().BoolVar(&flags.bothDirections, "both-directions", false, "emit both orientations per city pair (objective = tour cost)")

	return cmd
}

func runBuild(cmd *cobra.Command, flags *buildFlags, logger *zap.Logger) error {
	switch flags.format {
	case formatLP, formatYAML, formatJSON:
	default:
		return fmt.Errorf("unknown --format %q (want lp, yaml or json)", flags.format)
	}

	inst, err := loadInstance(cmd, flags.input)
	if err != nil {
		return err
	}

	var opts = []tsp.Option{tsp.WithLogger(logger)}
	switch {
	case flags.modelName != "":
		opts = append(opts, tsp.WithModelName(flags.modelName))
	case inst.Name() != "":
		opts = append(opts, tsp.WithModelName(inst.Name()))
	}
	if flags.bothDirections {
		opts = append(opts, tsp.WithBothDirections())
	}

	model, err := tsp.Build(inst, opts...)
	if err != nil {
		return fmt.Errorf("build model: %w", err)
	}

	var st = model.Stats()
	logger.Info("model built",
		zap.String("model", model.Name()),
		zap.Int("cities", inst.NumCities()),
		zap.Int("variables", st.Variables),
		zap.Int("quadratic_terms", st.QuadraticTerms),
		zap.Int("constraints", st.Constraints),
		zap.String("format", flags.format),
	)

	return withOutput(cmd, flags.output, func(w io.Writer) error {
		return writeModel(w, model, flags.format)
	})
}

// writeModel renders model in the requested format.
func writeModel(w io.Writer, model *qp.Model, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(model); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(model)
	default:
		return model.WriteLP(w)
	}
}
