package session

import (
	"errors"
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

func response(alg string) responses.ScheduleResponse {
	return responses.ScheduleResponse{
		Algorithm: alg,
		Computed:  true,
		Details:   []responses.ProcessResponse{{ProcessId: "P1", BurstTime: 2}},
		Timeline:  []core.ExecutionSlice{{Pid: "P1", Start: 0, End: 2}},
	}
}

func TestMemoryStoreSaveGet(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore(10)
	run := s.Save(response("fcfs"))
	if run.Id == "" || run.Response.RunId != run.Id {
		t.Fatalf("run = %+v", run)
	}

	got, err := s.Get(run.Id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Response.Algorithm != "fcfs" {
		t.Fatalf("Algorithm = %s, want fcfs", got.Response.Algorithm)
	}

	got.Response.Details[0].ProcessId = "changed"
	again, _ := s.Get(run.Id)
	if again.Response.Details[0].ProcessId != "P1" {
		t.Fatal("Get returned shared memory")
	}

	if _, err := s.Get("missing"); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("err = %v, want ErrRunNotFound", err)
	}
}

func TestMemoryStoreEvictsOldest(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore(2)
	first := s.Save(response("fcfs"))
	s.Save(response("sjf"))
	s.Save(response("rr"))

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if _, err := s.Get(first.Id); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("oldest run still present: %v", err)
	}
	list := s.List()
	if list[0].Response.Algorithm != "rr" || list[1].Response.Algorithm != "sjf" {
		t.Fatalf("List order = %s, %s; want rr, sjf", list[0].Response.Algorithm, list[1].Response.Algorithm)
	}

	s.Reset()
	if s.Len() != 0 || len(s.List()) != 0 {
		t.Fatal("Reset left runs behind")
	}
}

func TestNewMemoryStoreDefaultCapacity(t *testing.T) {
	t.Parallel()
	if s := NewMemoryStore(0); s.capacity != defaultCapacity {
		t.Fatalf("capacity = %d, want %d", s.capacity, defaultCapacity)
	}
}
