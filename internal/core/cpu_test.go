package core

import "testing"

func TestCPUExecute(t *testing.T) {
	t.Parallel()
	procs := CloneProcesses([]Process{{Pid: "A", BurstTime: 5, ArrivalTime: 1}})
	p := &procs[0]
	cpu := NewCPU()

	cpu.IdleUntil(p.ArrivalTime)
	cpu.IdleUntil(0) // never moves backwards
	if cpu.Now() != 1 {
		t.Fatalf("Now = %d, want 1", cpu.Now())
	}

	s := cpu.Execute(p, 2)
	if s != (ExecutionSlice{Pid: "A", Start: 1, End: 3}) || p.RemainingTime != 3 || p.Finished() {
		t.Fatalf("slice = %+v remaining = %d", s, p.RemainingTime)
	}
	if p.ResponseTime != 0 {
		t.Fatalf("ResponseTime = %d, want 0", p.ResponseTime)
	}

	cpu.IdleUntil(6)
	s = cpu.Execute(p, 10) // clamped to remaining
	if s.Duration() != 3 || !p.Finished() {
		t.Fatalf("slice = %+v remaining = %d", s, p.RemainingTime)
	}
	if p.CompletionTime != 9 || p.TurnaroundTime != 8 || p.WaitingTime != 3 {
		t.Fatalf("timing = done %d tat %d wait %d", p.CompletionTime, p.TurnaroundTime, p.WaitingTime)
	}

	m := cpu.Metric()
	if m != (CpuMetric{TotalTime: 9, UtilizationTime: 5, IdleTime: 4}) {
		t.Fatalf("metric = %+v", m)
	}
	if got := m.Throughput(1); got != 1.0/9 {
		t.Fatalf("throughput = %v", got)
	}
	if len(cpu.Timeline()) != 2 {
		t.Fatalf("timeline = %+v", cpu.Timeline())
	}
}

func TestCpuMetricZeroTotal(t *testing.T) {
	t.Parallel()
	var m CpuMetric
	if m.Utilization() != 0 || m.Throughput(3) != 0 {
		t.Fatalf("zero metric should report zeros, got %v %v", m.Utilization(), m.Throughput(3))
	}
}

func TestCloneProcessesIsIndependent(t *testing.T) {
	t.Parallel()
	orig := []Process{{Pid: "A", BurstTime: 4, RemainingTime: 0}}
	c := CloneProcesses(orig)
	c[0].WaitingTime = 9
	if orig[0].WaitingTime != 0 {
		t.Fatal("clone shares memory with original")
	}
	if c[0].RemainingTime != 4 {
		t.Fatalf("RemainingTime = %d, want reset to burst", c[0].RemainingTime)
	}
}
