package core

// CpuMetric summarizes how the simulated CPU spent its time, measured from t=0.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is busy time over total time; zero when nothing ran.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime <= 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per time unit; zero when nothing ran.
func (m CpuMetric) Throughput(completed int) float64 {
	if m.TotalTime <= 0 {
		return 0
	}
	return float64(completed) / float64(m.TotalTime)
}

// CPU is a single virtual processor driven by a discrete clock. It never
// sleeps: executing a slice simply advances the clock.
type CPU struct {
	clock    int
	busy     int
	timeline []ExecutionSlice
}

func NewCPU() *CPU {
	return &CPU{timeline: make([]ExecutionSlice, 0)}
}

// Now returns the current simulation time.
func (c *CPU) Now() int {
	return c.clock
}

// IdleUntil advances the clock to t if t lies in the future.
func (c *CPU) IdleUntil(t int) {
	if t > c.clock {
		c.clock = t
	}
}

// Execute runs p for at most d time units starting now and records the
// slice. When the process runs out of remaining time its completion,
// turnaround and waiting times are set.
func (c *CPU) Execute(p *Process, d int) ExecutionSlice {
	if d > p.RemainingTime {
		d = p.RemainingTime
	}
	if !p.started {
		p.started = true
		p.ResponseTime = c.clock - p.ArrivalTime
	}

	slice := ExecutionSlice{Pid: p.Pid, Start: c.clock, End: c.clock + d}
	c.timeline = append(c.timeline, slice)
	c.clock += d
	c.busy += d
	p.RemainingTime -= d

	if p.Finished() {
		p.CompletionTime = c.clock
		p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
		p.WaitingTime = p.TurnaroundTime - p.BurstTime
	}
	return slice
}

// RunToCompletion executes p for its whole remaining time.
func (c *CPU) RunToCompletion(p *Process) ExecutionSlice {
	return c.Execute(p, p.RemainingTime)
}

// Timeline returns a copy of the slices executed so far, in order.
func (c *CPU) Timeline() []ExecutionSlice {
	out := make([]ExecutionSlice, len(c.timeline))
	copy(out, c.timeline)
	return out
}

func (c *CPU) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.clock,
		UtilizationTime: c.busy,
		IdleTime:        c.clock - c.busy,
	}
}
