package schedulers

import "cpu-scheduler/internal/core"

// SchedulePriority is non-preemptive priority scheduling. A lower priority
// value is more urgent; ties go to the earlier arrival, then the lower
// Index.
func SchedulePriority(processes []core.Process) Result {
	procs := core.CloneProcesses(processes)
	cpu := core.NewCPU()
	runNonPreemptive(cpu, procs, func(a, b *core.Process) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.ArrivalTime != b.ArrivalTime {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.Index < b.Index
	})
	return generateResult(Priority, 0, procs, cpu, nil)
}
