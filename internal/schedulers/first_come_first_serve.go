package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes in arrival order. Equal
// arrivals run in Index order.
func ScheduleFirstComeFirstServe(processes []core.Process) Result {
	procs := core.CloneProcesses(processes)
	order := sortedByArrival(procs)

	cpu := core.NewCPU()
	for _, p := range order {
		cpu.IdleUntil(p.ArrivalTime)
		cpu.RunToCompletion(p)
	}

	return generateResult(FirstComeFirstServe, 0, procs, cpu, nil)
}

// sortedByArrival returns pointers into procs ordered by arrival time,
// then Index, then slice position.
func sortedByArrival(procs []core.Process) []*core.Process {
	order := make([]*core.Process, len(procs))
	for i := range procs {
		order[i] = &procs[i]
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].ArrivalTime != order[j].ArrivalTime {
			return order[i].ArrivalTime < order[j].ArrivalTime
		}
		return order[i].Index < order[j].Index
	})
	return order
}
