package core

// Process is the engine's working copy of one schedulable job. The input
// fields are filled by normalization; the timing fields are written by the
// CPU as slices execute.
type Process struct {
	Pid         string
	BurstTime   int
	ArrivalTime int
	Priority    int

	// RemainingTime is scratch state for preemptive disciplines.
	RemainingTime int

	WaitingTime    int
	TurnaroundTime int
	CompletionTime int
	ResponseTime   int

	// Index is the position in the normalized input. Disciplines use it as
	// the last tie-break.
	Index int

	started bool
}

// Finished reports whether the process has consumed its whole burst.
func (p *Process) Finished() bool {
	return p.RemainingTime == 0
}

// ExecutionSlice is a contiguous interval [Start, End) during which Pid held the CPU.
type ExecutionSlice struct {
	Pid   string `json:"process_id" yaml:"process_id"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

func (s ExecutionSlice) Duration() int {
	return s.End - s.Start
}

// Round is one Round Robin turn as shown in a step-by-step explanation.
type Round struct {
	Round           int    `json:"round" yaml:"round"`
	Pid             string `json:"process_id" yaml:"process_id"`
	Start           int    `json:"start" yaml:"start"`
	Run             int    `json:"run" yaml:"run"`
	RemainingBefore int    `json:"remaining_before" yaml:"remaining_before"`
	RemainingAfter  int    `json:"remaining_after" yaml:"remaining_after"`
}

// CloneProcesses returns an independent copy with RemainingTime reset to the burst.
func CloneProcesses(processes []Process) []Process {
	out := make([]Process, len(processes))
	copy(out, processes)
	for i := range out {
		out[i].RemainingTime = out[i].BurstTime
		out[i].started = false
	}
	return out
}
