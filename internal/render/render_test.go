package render

import (
	"bytes"
	"strings"
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

func TestGanttShowsIdle(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Gantt(&buf, []core.ExecutionSlice{{Pid: "P1", Start: 2, End: 4}, {Pid: "A-very-long-pid", Start: 4, End: 5}})

	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "Gantt schedule" {
		t.Fatalf("heading = %q", lines[0])
	}
	if !strings.Contains(lines[1], "idle") || !strings.Contains(lines[1], "P1") || !strings.Contains(lines[1], "A-very-long-pid") {
		t.Fatalf("cells = %q", lines[1])
	}
	if lines[2] != "0\t2\t4\t5" {
		t.Fatalf("times = %q", lines[2])
	}
}

func TestReportRoundRobin(t *testing.T) {
	t.Parallel()
	request := requests.ScheduleRequests{Jobs: []requests.Job{
		{ProcessId: "P1", BurstTime: "5"},
		{ProcessId: "P2", BurstTime: "3", ArrivalTime: "1"},
	}}
	result, _, err := schedulers.Simulate(schedulers.RoundRobin, request, 2)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}

	var buf bytes.Buffer
	Report(&buf, schedulers.GenerateResponse(result))
	out := buf.String()
	for _, want := range []string{"Round Robin (RR), quantum 2", "Schedule table", "TURNAROUND", "Round Robin rounds", "REMAINING BEFORE"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestTableUnavailableAverages(t *testing.T) {
	t.Parallel()
	result, _, _ := schedulers.Simulate(schedulers.FirstComeFirstServe, requests.ScheduleRequests{}, 2)
	var buf bytes.Buffer
	Report(&buf, schedulers.GenerateResponse(result))
	if !strings.Contains(buf.String(), "Gantt schedule\n-\n") {
		t.Fatalf("report = %s", buf.String())
	}
	if strings.Contains(buf.String(), "NaN") {
		t.Fatalf("report contains NaN:\n%s", buf.String())
	}
}

func TestYAMLAndJSON(t *testing.T) {
	t.Parallel()
	result, _, err := schedulers.Simulate(schedulers.ShortestJobFirst,
		requests.ScheduleRequests{Jobs: []requests.Job{{ProcessId: "P1", BurstTime: "2"}}}, 2)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	response := schedulers.GenerateResponse(result)

	var y bytes.Buffer
	if err := YAML(&y, response); err != nil {
		t.Fatalf("YAML: %v", err)
	}
	if !strings.Contains(y.String(), "algorithm: sjf") || !strings.Contains(y.String(), "process_id: P1") {
		t.Fatalf("yaml = %s", y.String())
	}

	var j bytes.Buffer
	if err := JSON(&j, response); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(j.String(), `"average_waiting_time": 0`) {
		t.Fatalf("json = %s", j.String())
	}
}
