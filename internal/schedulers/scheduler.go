package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/util"
)

var (
	// ErrNoProcesses means nothing was left to schedule after normalization.
	ErrNoProcesses = errors.New("no schedulable processes")
	// ErrUnknownAlgorithm is returned for an unrecognized discipline name.
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
	// ErrLimitExceeded is returned by CheckLimits.
	ErrLimitExceeded = errors.New("request exceeds scheduler limits")
)

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	Priority            Algorithm = "priority"
	RoundRobin          Algorithm = "rr"
)

type algorithmInfo struct {
	name        string
	preemptive  bool
	explanation string
}

var catalogue = map[Algorithm]algorithmInfo{
	FirstComeFirstServe: {
		name:        "First-Come, First-Served (FCFS)",
		explanation: "FCFS schedules processes in the order they arrive.",
	},
	ShortestJobFirst: {
		name:        "Shortest Job First (SJF)",
		explanation: "SJF schedules the arrived process with the shortest burst time and runs it to completion.",
	},
	Priority: {
		name:        "Priority Scheduling",
		explanation: "Priority scheduling runs the arrived process with the highest priority (lowest number) to completion.",
	},
	RoundRobin: {
		name:        "Round Robin (RR)",
		preemptive:  true,
		explanation: "Round Robin gives each process a fixed time quantum. A process that does not finish in its quantum is preempted and moved to the back of the ready queue.",
	},
}

var aliases = map[string]Algorithm{
	"fcfs":                   FirstComeFirstServe,
	"first_come_first_serve": FirstComeFirstServe,
	"first-come-first-serve": FirstComeFirstServe,
	"sjf":                    ShortestJobFirst,
	"shortest_job_first":     ShortestJobFirst,
	"shortest-job-first":     ShortestJobFirst,
	"priority":               Priority,
	"ps":                     Priority,
	"rr":                     RoundRobin,
	"round_robin":            RoundRobin,
	"round-robin":            RoundRobin,
}

// Algorithms lists the supported disciplines in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{FirstComeFirstServe, ShortestJobFirst, Priority, RoundRobin}
}

func ParseAlgorithm(s string) (Algorithm, error) {
	if a, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) Name() string        { return catalogue[a].name }
func (a Algorithm) Explanation() string { return catalogue[a].explanation }
func (a Algorithm) Preemptive() bool    { return catalogue[a].preemptive }

// Result is the outcome of one simulation. Processes are in input order;
// Timeline is in execution order. Rounds is only set for Round Robin.
type Result struct {
	Algorithm   Algorithm
	TimeQuantum int
	Processes   []core.Process
	Timeline    []core.ExecutionSlice
	Rounds      []core.Round
	Metric      core.CpuMetric
	Averages    util.Averages
}

// ByPid indexes the computed processes by identifier for merging back
// onto caller-owned records.
func (r Result) ByPid() map[string]core.Process {
	m := make(map[string]core.Process, len(r.Processes))
	for _, p := range r.Processes {
		m[p.Pid] = p
	}
	return m
}

// Schedule dispatches to the discipline named by alg. The quantum is only
// read by Round Robin. An empty process set yields ErrNoProcesses.
func Schedule(alg Algorithm, processes []core.Process, timeQuantum int) (Result, error) {
	if _, ok := catalogue[alg]; !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
	if len(processes) == 0 {
		return Result{Algorithm: alg}, ErrNoProcesses
	}

	switch alg {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes), nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes), nil
	case Priority:
		return SchedulePriority(processes), nil
	default:
		return ScheduleRoundRobin(processes, timeQuantum), nil
	}
}

// Simulate normalizes raw jobs and schedules them with alg. It also
// reports how many jobs normalization dropped. The quantum comes from the
// request when usable, otherwise from fallbackQuantum.
func Simulate(alg Algorithm, request requests.ScheduleRequests, fallbackQuantum int) (Result, int, error) {
	processes, dropped := NormalizeJobs(request.Jobs)
	quantum := 0
	if alg == RoundRobin {
		quantum = ParseTimeQuantum(request.TimeQuantum, fallbackQuantum)
	}
	result, err := Schedule(alg, processes, quantum)
	return result, dropped, err
}

// Limits caps the work a single request may ask for. Zero disables a limit.
type Limits struct {
	MaxProcesses int
	MaxBurst     int
}

// CheckLimits rejects requests with too many jobs or a job whose burst
// exceeds MaxBurst. Round Robin records a turn per quantum, so the burst
// bound also bounds the size of its timeline.
func CheckLimits(request requests.ScheduleRequests, limits Limits) error {
	if limits.MaxProcesses > 0 && len(request.Jobs) > limits.MaxProcesses {
		return fmt.Errorf("%w: too many processes: %d > %d", ErrLimitExceeded, len(request.Jobs), limits.MaxProcesses)
	}
	if limits.MaxBurst <= 0 {
		return nil
	}
	for i, job := range request.Jobs {
		if burst, ok := job.BurstTime.Int(); ok && burst > limits.MaxBurst {
			return fmt.Errorf("%w: job %d burst time %d > %d", ErrLimitExceeded, i+1, burst, limits.MaxBurst)
		}
	}
	return nil
}
