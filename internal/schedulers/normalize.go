package schedulers

import (
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

const (
	// DefaultTimeQuantum is used when the caller supplies no usable quantum.
	DefaultTimeQuantum = 2
	defaultPriority    = 1
)

// NormalizeJobs turns raw descriptors into schedulable processes. Malformed
// numbers fall back to defaults (burst 0, arrival 0, priority 1) and any
// job whose burst is not positive is dropped. The second return value is
// the number of dropped jobs.
func NormalizeJobs(jobs []requests.Job) ([]core.Process, int) {
	processes := make([]core.Process, 0, len(jobs))
	dropped := 0
	for i, job := range jobs {
		burst := job.BurstTime.IntOr(0)
		if burst <= 0 {
			dropped++
			continue
		}
		arrival := job.ArrivalTime.IntOr(0)
		if arrival < 0 {
			arrival = 0
		}
		pid := strings.TrimSpace(job.ProcessId)
		if pid == "" {
			pid = "P" + strconv.Itoa(i+1)
		}
		processes = append(processes, core.Process{
			Pid:           pid,
			BurstTime:     burst,
			ArrivalTime:   arrival,
			Priority:      job.Priority.IntOr(defaultPriority),
			RemainingTime: burst,
			Index:         len(processes),
		})
	}
	return processes, dropped
}

// ParseTimeQuantum returns raw as a positive quantum, or fallback. A
// non-positive fallback is replaced by DefaultTimeQuantum.
func ParseTimeQuantum(raw requests.Value, fallback int) int {
	if fallback <= 0 {
		fallback = DefaultTimeQuantum
	}
	if q, ok := raw.Int(); ok && q > 0 {
		return q
	}
	return fallback
}
