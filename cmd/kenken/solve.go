package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"svw.info/kenken/internal/domain"
	"svw.info/kenken/internal/parser"
	"svw.info/kenken/internal/ports"
	"svw.info/kenken/internal/render"
	"svw.info/kenken/internal/usecase"
)

var (
	styleSolved = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	styleFailed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	formatter ports.Formatter = render.NewASCII()
)

func newSolveCmd() *cobra.Command {
	var (
		save    bool
		name    string
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Parse and solve puzzle files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService(dataDir)
			failed := 0
			for _, path := range args {
				ok, err := solveFile(cmd, svc, path, name, save)
				if err != nil {
					return err
				}
				if !ok {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d puzzles not solved", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "persist the solve result")
	cmd.Flags().StringVar(&name, "name", "", "name stored with a saved result")
	cmd.Flags().StringVar(&dataDir, "data", "data", "directory for saved results")
	return cmd
}

func solveFile(cmd *cobra.Command, svc *usecase.Service, path, name string, save bool) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	def, err := parser.Decode(data)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	p, err := parser.Build(def)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}

	ok, st, err := svc.Solve(p)
	if err != nil {
		return false, err
	}

	out := cmd.OutOrStdout()
	if ok {
		fmt.Fprintln(out, styleSolved.Render("SOLVED")+" "+path)
	} else {
		fmt.Fprintln(out, styleFailed.Render("FAILED")+" "+path)
	}
	fmt.Fprintf(out, "backtracks=%d recursive_calls=%d took=%v\n",
		st.Backtracks, st.RecursiveCalls, st.Duration.Round(time.Microsecond))
	if ok {
		fmt.Fprintln(out, formatter.Format(p))
	}

	if save {
		rec := &domain.Record{
			ID:             uuid.NewString(),
			Name:           name,
			Width:          def.Width,
			Definition:     def,
			Solved:         ok,
			Backtracks:     st.Backtracks,
			RecursiveCalls: st.RecursiveCalls,
			DurationMs:     st.Duration.Milliseconds(),
			CreatedAt:      time.Now().Unix(),
		}
		if ok {
			rec.Solution = p.Grid()
		}
		if err := svc.Save(cmd.Context(), rec); err != nil {
			return ok, err
		}
		logger.Info("saved result", "id", rec.ID, "file", path)
	}
	return ok, nil
}

func newBatchCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "batch DIR",
		Short: "Solve and benchmark every puzzle file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			for _, pattern := range []string{"*.kk", "*.yaml", "*.yml"} {
				matches, err := filepath.Glob(filepath.Join(args[0], pattern))
				if err != nil {
					return err
				}
				files = append(files, matches...)
			}
			if len(files) == 0 {
				return fmt.Errorf("no puzzle files in %s", args[0])
			}

			svc := newService(dataDir)
			solved := 0
			start := time.Now()
			for _, path := range files {
				ok, err := solveFile(cmd, svc, path, "", false)
				if err != nil {
					return err
				}
				if ok {
					solved++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "solved %d/%d puzzles in %v\n",
				solved, len(files), time.Since(start).Round(time.Millisecond))
			if solved < len(files) {
				return fmt.Errorf("%d puzzles not solved", len(files)-solved)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "data", "directory for saved results")
	return cmd
}
