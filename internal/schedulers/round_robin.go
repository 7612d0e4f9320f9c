package schedulers

import (
	"cpu-scheduler/internal/core"
)

// processQueue is a FIFO ready queue.
type processQueue struct {
	queue []*core.Process
}

func (q *processQueue) AddToEnd(p *core.Process) {
	q.queue = append(q.queue, p)
}

func (q *processQueue) RemoveFromTop() (*core.Process, bool) {
	if len(q.queue) == 0 {
		return nil, false
	}
	p := q.queue[0]
	q.queue = q.queue[1:]
	return p, true
}

func (q *processQueue) Len() int {
	return len(q.queue)
}

// ScheduleRoundRobin runs processes in turns of at most timeQuantum. A
// non-positive quantum is replaced by DefaultTimeQuantum. Processes that
// arrive while a turn runs, including exactly at its end, are queued ahead
// of the preempted process.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) Result {
	if timeQuantum <= 0 {
		timeQuantum = DefaultTimeQuantum
	}

	procs := core.CloneProcesses(processes)
	arrivals := sortedByArrival(procs)
	cpu := core.NewCPU()
	ready := &processQueue{}
	rounds := make([]core.Round, 0)

	admit := func() {
		for len(arrivals) > 0 && arrivals[0].ArrivalTime <= cpu.Now() {
			ready.AddToEnd(arrivals[0])
			arrivals = arrivals[1:]
		}
	}

	for len(arrivals) > 0 || ready.Len() > 0 {
		if ready.Len() == 0 {
			cpu.IdleUntil(arrivals[0].ArrivalTime)
		}
		admit()

		p, _ := ready.RemoveFromTop()
		before := p.RemainingTime
		slice := cpu.Execute(p, timeQuantum)
		rounds = append(rounds, core.Round{
			Round:           len(rounds) + 1,
			Pid:             p.Pid,
			Start:           slice.Start,
			Run:             slice.Duration(),
			RemainingBefore: before,
			RemainingAfter:  p.RemainingTime,
		})

		admit()
		if !p.Finished() {
			ready.AddToEnd(p)
		}
	}

	return generateResult(RoundRobin, timeQuantum, procs, cpu, rounds)
}
