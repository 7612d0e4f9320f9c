package schedulers

import (
	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive SJF: at every decision point
// the arrived process with the smallest burst runs to completion. Ties go
// to the earlier arrival, then to the lower Index.
func ScheduleShortestJobFirst(processes []core.Process) Result {
	procs := core.CloneProcesses(processes)
	cpu := core.NewCPU()
	runNonPreemptive(cpu, procs, func(a, b *core.Process) bool {
		if a.BurstTime != b.BurstTime {
			return a.BurstTime < b.BurstTime
		}
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.Index < b.Index
	})
	return generateResult(ShortestJobFirst, 0, procs, cpu, nil)
}

// runNonPreemptive repeatedly picks the best arrived process according to
// less and runs it to completion. When nothing has arrived the CPU idles
// until the earliest pending arrival.
func runNonPreemptive(cpu *core.CPU, procs []core.Process, less func(a, b *core.Process) bool) {
	remaining := make([]*core.Process, len(procs))
	for i := range procs {
		remaining[i] = &procs[i]
	}

	for len(remaining) > 0 {
		next := -1
		for i, p := range remaining {
			if p.ArrivalTime > cpu.Now() {
				continue
			}
			if next == -1 || less(p, remaining[next]) {
				next = i
			}
		}

		if next == -1 {
			cpu.IdleUntil(earliestArrival(remaining))
			continue
		}

		cpu.RunToCompletion(remaining[next])
		remaining = append(remaining[:next], remaining[next+1:]...)
	}
}

func earliestArrival(procs []*core.Process) int {
	earliest := procs[0].ArrivalTime
	for _, p := range procs[1:] {
		if p.ArrivalTime < earliest {
			earliest = p.ArrivalTime
		}
	}
	return earliest
}
