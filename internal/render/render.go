package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

const idleLabel = "idle"

// Title writes a boxed heading for one algorithm's output.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt draws the timeline as a row of labelled cells followed by the
// boundary times. Gaps between slices are drawn as idle cells.
func Gantt(w io.Writer, timeline []core.ExecutionSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintf(w, "%s\n\n", util.NotAvailable)
		return
	}

	cells := withIdle(timeline)
	_, _ = fmt.Fprint(w, "|")
	for _, c := range cells {
		padding := strings.Repeat(" ", cellPadding(c.Pid))
		_, _ = fmt.Fprint(w, padding, c.Pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, c := range cells {
		_, _ = fmt.Fprint(w, strconv.Itoa(c.Start), "\t")
		if i == len(cells)-1 {
			_, _ = fmt.Fprint(w, strconv.Itoa(c.End))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func cellPadding(label string) int {
	if len(label) >= 8 {
		return 1
	}
	return (8 - len(label)) / 2
}

func withIdle(timeline []core.ExecutionSlice) []core.ExecutionSlice {
	cells := make([]core.ExecutionSlice, 0, len(timeline))
	clock := 0
	for _, s := range timeline {
		if s.Start > clock {
			cells = append(cells, core.ExecutionSlice{Pid: idleLabel, Start: clock, End: s.Start})
		}
		cells = append(cells, s)
		clock = s.End
	}
	return cells
}

// Table writes the per-process schedule with the averages as a footer.
func Table(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			d.ProcessId,
			strconv.Itoa(d.Priority),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.CompletionTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%s", average(response.AverageWaitingTime)),
		fmt.Sprintf("Average\n%s", average(response.AverageTurnAroundTime)),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
}

// Rounds writes the Round Robin turn-by-turn table. It writes nothing for
// other disciplines.
func Rounds(w io.Writer, rounds []core.Round) {
	if len(rounds) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, "Round Robin rounds")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Round", "Process", "Start", "Run", "Remaining before", "Remaining after"})
	for _, r := range rounds {
		table.Append([]string{
			strconv.Itoa(r.Round),
			r.Pid,
			strconv.Itoa(r.Start),
			strconv.Itoa(r.Run),
			strconv.Itoa(r.RemainingBefore),
			strconv.Itoa(r.RemainingAfter),
		})
	}
	table.Render()
}

// Report writes the full text report for one response.
func Report(w io.Writer, response responses.ScheduleResponse) {
	title := response.AlgorithmName
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s, quantum %d", title, response.TimeQuantum)
	}
	Title(w, title)
	Gantt(w, response.Timeline)
	Table(w, response)
	Rounds(w, response.Rounds)
	_, _ = fmt.Fprintln(w)
}

func average(v *float64) string {
	if v == nil {
		return util.NotAvailable
	}
	return util.FormatAverage(*v, true)
}

func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
