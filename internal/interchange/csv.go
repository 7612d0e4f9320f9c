// Package interchange reads and writes the comma-separated process table:
//
//	pid,burstTime,arrivalTime,priority,waitingTime,turnaroundTime
//
// followed by a synthetic Average row carrying the two averages. Only the
// four base fields are read back; computed fields are recomputed.
package interchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

var ErrMalformedRow = errors.New("malformed process row")

const averageLabel = "Average"

var Header = []string{"pid", "burstTime", "arrivalTime", "priority", "waitingTime", "turnaroundTime"}

// WriteCSV writes the header, one row per computed process and the
// Average row.
func WriteCSV(w io.Writer, response responses.ScheduleResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, d := range response.Details {
		row := []string{
			d.ProcessId,
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.Priority),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnAroundTime),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{averageLabel, "", "", "",
		formatPtr(response.AverageWaitingTime),
		formatPtr(response.AverageTurnAroundTime),
	}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func formatPtr(v *float64) string {
	if v == nil {
		return util.NotAvailable
	}
	return util.FormatAverage(*v, true)
}

// ReadCSV parses process rows. Header rows and Average rows are skipped
// wherever they appear, so the concatenated blocks of a multi-algorithm
// export read back as repeated process sets. Numeric fields are returned
// verbatim so that malformed values are handled by normalization rather
// than rejected here.
func ReadCSV(r io.Reader) ([]requests.Job, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	jobs := make([]requests.Job, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		if isBlank(row) {
			continue
		}
		pid := strings.TrimSpace(row[0])
		if isHeader(row) || strings.EqualFold(pid, averageLabel) {
			continue
		}
		if len(row) < 2 {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: want at least pid and burstTime", ErrMalformedRow, line)
		}

		job := requests.Job{
			ProcessId: pid,
			BurstTime: requests.Value(strings.TrimSpace(row[1])),
		}
		if len(row) > 2 {
			job.ArrivalTime = requests.Value(strings.TrimSpace(row[2]))
		}
		if len(row) > 3 {
			job.Priority = requests.Value(strings.TrimSpace(row[3]))
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func isHeader(row []string) bool {
	return len(row) > 1 &&
		strings.EqualFold(strings.TrimSpace(row[0]), Header[0]) &&
		strings.EqualFold(strings.TrimSpace(row[1]), Header[1])
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
