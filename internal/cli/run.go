package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/interchange"
	"cpu-scheduler/internal/render"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

const algorithmAll = "all"

func newRunCmd() *cobra.Command {
	var (
		input     string
		algorithm string
		quantum   string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Schedule the processes in a CSV file",
		Long: "Reads rows of pid,burstTime,arrivalTime,priority (header and Average rows are skipped)\n" +
			"and prints the computed schedule.",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := readJobs(cmd, input)
			if err != nil {
				return err
			}

			algs, err := selectAlgorithms(algorithm)
			if err != nil {
				return err
			}

			request := requests.ScheduleRequests{Jobs: jobs, TimeQuantum: requests.Value(quantum)}
			limits := schedulers.Limits{MaxProcesses: cfg.MaxProcesses, MaxBurst: cfg.MaxBurst}
			if err := schedulers.CheckLimits(request, limits); err != nil {
				return err
			}
			out := make([]responses.ScheduleResponse, 0, len(algs))
			for _, alg := range algs {
				result, dropped, err := schedulers.Simulate(alg, request, cfg.RoundRobinTimeQuantum)
				if err != nil && !errors.Is(err, schedulers.ErrNoProcesses) {
					return err
				}
				logger.Debug().
					Str("algorithm", string(alg)).
					Int("processes", len(result.Processes)).
					Int("dropped", dropped).
					Msg("schedule computed")
				out = append(out, schedulers.GenerateResponse(result))
			}
			return write(cmd.OutOrStdout(), format, out)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "CSV file to read (- for stdin)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(schedulers.FirstComeFirstServe), "fcfs, sjf, priority, rr or all")
	cmd.Flags().StringVarP(&quantum, "quantum", "q", "", "Round Robin time quantum (defaults to the configured quantum)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, json, yaml, csv")
	return cmd
}

func readJobs(cmd *cobra.Command, input string) ([]requests.Job, error) {
	var r io.Reader = cmd.InOrStdin()
	if input != "" && input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	return interchange.ReadCSV(r)
}

func selectAlgorithms(name string) ([]schedulers.Algorithm, error) {
	if strings.EqualFold(strings.TrimSpace(name), algorithmAll) {
		return schedulers.Algorithms(), nil
	}
	alg, err := schedulers.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []schedulers.Algorithm{alg}, nil
}

func write(w io.Writer, format string, out []responses.ScheduleResponse) error {
	switch strings.ToLower(format) {
	case "table", "":
		for _, r := range out {
			render.Report(w, r)
		}
		return nil
	case "json":
		if len(out) == 1 {
			return render.JSON(w, out[0])
		}
		return render.JSON(w, out)
	case "yaml", "yml":
		if len(out) == 1 {
			return render.YAML(w, out[0])
		}
		return render.YAML(w, out)
	case "csv":
		for _, r := range out {
			if err := interchange.WriteCSV(w, r); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
