package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"svw.info/kenken/internal/infrastructure/storage"
	"svw.info/kenken/internal/solver"
	"svw.info/kenken/internal/usecase"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func newService(dataDir string) *usecase.Service {
	return usecase.NewService(solver.NewEngine(), storage.NewFS(dataDir))
}

func main() {
	root := &cobra.Command{
		Use:           "kenken",
		Short:         "Solve KenKen puzzles with constrained backtracking",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCmd(), newBatchCmd(), newServeCmd())

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}
