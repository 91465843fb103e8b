package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/permqp/tsp"
)

// loadInstance reads an instance file; "-" reads stdin.
func loadInstance(cmd *cobra.Command, path string) (*tsp.Instance, error) {
	if path == "" {
		return nil, fmt.Errorf("missing --input")
	}
	if path == "-" {
		return tsp.LoadInstance(cmd.InOrStdin())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open instance: %w", err)
	}
	defer f.Close()

	inst, err := tsp.LoadInstance(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// withOutput calls write with the command's stdout, or with a freshly created
// file when path is set. The file is closed (and its error reported) afterwards.
func withOutput(cmd *cobra.Command, path string, write func(io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	return write(f)
}
