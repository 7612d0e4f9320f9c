package requests

import (
	"encoding/json"
	"testing"
)

func TestScheduleRequestsAcceptsMixedValues(t *testing.T) {
	t.Parallel()
	body := `{"jobs":[{"process_id":"P1","burst_time":5,"arrival_time":"1","priority":null},
		{"process_id":"P2","burst_time":"x"}],"time_quantum":3}`

	var req ScheduleRequests
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(req.Jobs) != 2 {
		t.Fatalf("jobs = %d, want 2", len(req.Jobs))
	}
	if req.Jobs[0].BurstTime != "5" || req.Jobs[0].ArrivalTime != "1" || req.Jobs[0].Priority != "" {
		t.Fatalf("job 0 = %+v", req.Jobs[0])
	}
	if req.Jobs[1].BurstTime != "x" {
		t.Fatalf("job 1 burst = %q, want x", req.Jobs[1].BurstTime)
	}
	if q, ok := req.TimeQuantum.Int(); !ok || q != 3 {
		t.Fatalf("quantum = %d, %v; want 3", q, ok)
	}
}

func TestValueInt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   Value
		want int
		ok   bool
	}{
		{"12", 12, true},
		{" 7 ", 7, true},
		{"-4", -4, true},
		{"+3", 3, true},
		{"2.9", 2, true},
		{"2.7", 2, true},
		{"5ms", 5, true},
		{"1e3", 1, true},
		{"007", 7, true},
		{"1000000000", MaxValue, true},
		{"-1000000000", -MaxValue, true},
		{"1000000001", 0, false},
		{"9223372036854775807", 0, false},
		{"4611686018427387904", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"abc", 0, false},
		{".5", 0, false},
		{"NaN", 0, false},
		{"Infinity", 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.in.Int()
		if got != tt.want || ok != tt.ok {
			t.Errorf("Value(%q).Int() = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if got := Value("oops").IntOr(1); got != 1 {
		t.Errorf("IntOr fallback = %d, want 1", got)
	}
	if Number(8) != "8" {
		t.Errorf("Number(8) = %q", Number(8))
	}
}
