package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"cpu-scheduler/internal/responses"
)

// ErrRunNotFound indicates that the requested run is not in the history.
var ErrRunNotFound = errors.New("run not found")

const defaultCapacity = 50

// Run is one computed simulation kept for later retrieval.
type Run struct {
	Id        string                     `json:"id"`
	CreatedAt time.Time                  `json:"created_at"`
	Response  responses.ScheduleResponse `json:"response"`
}

// MemoryStore keeps the most recent runs of the current process. Once full,
// the oldest run is evicted. Nothing outlives the process.
type MemoryStore struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	runs     map[string]Run
	now      func() time.Time
}

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &MemoryStore{
		capacity: capacity,
		order:    make([]string, 0, capacity),
		runs:     map[string]Run{},
		now:      time.Now,
	}
}

// Save stores response under a fresh id and returns the stored run.
func (s *MemoryStore) Save(response responses.ScheduleResponse) Run {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	response.RunId = id
	run := Run{Id: id, CreatedAt: s.now().UTC(), Response: cloneResponse(response)}

	if len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.runs, oldest)
	}
	s.order = append(s.order, id)
	s.runs[id] = run
	return run
}

func (s *MemoryStore) Get(id string) (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return Run{}, ErrRunNotFound
	}
	run.Response = cloneResponse(run.Response)
	return run, nil
}

// List returns the stored runs, newest first.
func (s *MemoryStore) List() []Run {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Run, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		run := s.runs[s.order[i]]
		run.Response = cloneResponse(run.Response)
		out = append(out, run)
	}
	return out
}

// Reset forgets every stored run.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = s.order[:0]
	s.runs = map[string]Run{}
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func cloneResponse(r responses.ScheduleResponse) responses.ScheduleResponse {
	clone := r
	clone.Details = append(r.Details[:0:0], r.Details...)
	clone.Timeline = append(r.Timeline[:0:0], r.Timeline...)
	if r.Rounds != nil {
		clone.Rounds = append(r.Rounds[:0:0], r.Rounds...)
	}
	clone.AverageWaitingTime = clonePtr(r.AverageWaitingTime)
	clone.AverageTurnAroundTime = clonePtr(r.AverageTurnAroundTime)
	clone.AverageResponseTime = clonePtr(r.AverageResponseTime)
	return clone
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
