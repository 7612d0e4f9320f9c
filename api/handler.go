package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/session"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
	ResetRuns(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	runs   *session.MemoryStore
	log    zerolog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, runs *session.MemoryStore, log zerolog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, runs: runs, log: log}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

// AllAlgorithms runs every discipline on the same input.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}

	out := make(map[string]responses.ScheduleResponse, len(schedulers.Algorithms()))
	for _, alg := range schedulers.Algorithms() {
		response, err := s.simulate(ctx, alg, request)
		if err != nil {
			return err
		}
		out[string(alg)] = response
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	out := make([]responses.AlgorithmResponse, 0, len(schedulers.Algorithms()))
	for _, alg := range schedulers.Algorithms() {
		out = append(out, responses.AlgorithmResponse{
			Id:          string(alg),
			Name:        alg.Name(),
			Preemptive:  alg.Preemptive(),
			Explanation: alg.Explanation(),
		})
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	return ctx.JSON(s.runs.List())
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	run, err := s.runs.Get(ctx.Params("id"))
	if errors.Is(err, session.ErrRunNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}
	return ctx.JSON(run)
}

func (s *SchedulerHandlerImpl) ResetRuns(ctx *fiber.Ctx) error {
	s.runs.Reset()
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, alg schedulers.Algorithm) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}
	response, err := s.simulate(ctx, alg, request)
	if err != nil {
		return err
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) limits() schedulers.Limits {
	return schedulers.Limits{MaxProcesses: s.config.MaxProcesses, MaxBurst: s.config.MaxBurst}
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return request, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	if err := schedulers.CheckLimits(request, s.limits()); err != nil {
		return request, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if q := ctx.Query("quantum"); q != "" {
		request.TimeQuantum = requests.Value(q)
	}
	return request, nil
}

// simulate runs one discipline. An input with nothing schedulable is not
// an error: the response reports computed=false and no averages.
func (s *SchedulerHandlerImpl) simulate(ctx *fiber.Ctx, alg schedulers.Algorithm, request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	result, dropped, err := schedulers.Simulate(alg, request, s.config.RoundRobinTimeQuantum)
	switch {
	case errors.Is(err, schedulers.ErrNoProcesses):
		s.log.Info().
			Str("request_id", requestID(ctx)).
			Str("algorithm", string(alg)).
			Int("dropped", dropped).
			Msg("nothing to schedule")
		return schedulers.GenerateResponse(result), nil
	case err != nil:
		return responses.ScheduleResponse{}, err
	}

	response := s.runs.Save(schedulers.GenerateResponse(result)).Response
	s.log.Info().
		Str("request_id", requestID(ctx)).
		Str("run_id", response.RunId).
		Str("algorithm", string(alg)).
		Int("processes", len(result.Processes)).
		Int("dropped", dropped).
		Int("time_quantum", result.TimeQuantum).
		Msg("schedule computed")
	return response, nil
}
