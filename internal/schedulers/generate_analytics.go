package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

func generateResult(alg Algorithm, timeQuantum int, procs []core.Process, cpu *core.CPU, rounds []core.Round) Result {
	for i := range procs {
		procs[i].RemainingTime = 0
	}
	return Result{
		Algorithm:   alg,
		TimeQuantum: timeQuantum,
		Processes:   procs,
		Timeline:    cpu.Timeline(),
		Rounds:      rounds,
		Metric:      cpu.Metric(),
		Averages:    util.CalculateAverage(procs),
	}
}

// GenerateResponse converts a result into its display form. A zero Result
// (nothing scheduled) produces Computed=false with null averages.
func GenerateResponse(result Result) responses.ScheduleResponse {
	avg := result.Averages
	response := responses.ScheduleResponse{
		Algorithm:             string(result.Algorithm),
		AlgorithmName:         result.Algorithm.Name(),
		TimeQuantum:           result.TimeQuantum,
		Computed:              avg.Available,
		TotalTime:             result.Metric.TotalTime,
		IdleTime:              result.Metric.IdleTime,
		CpuUtilization:        util.Round2(result.Metric.Utilization()),
		CpuThroughput:         util.Round2(result.Metric.Throughput(len(result.Processes))),
		AverageWaitingTime:    util.RoundedPtr(avg.WaitingTime, avg.Available),
		AverageTurnAroundTime: util.RoundedPtr(avg.TurnaroundTime, avg.Available),
		AverageResponseTime:   util.RoundedPtr(avg.ResponseTime, avg.Available),
		Details:               make([]responses.ProcessResponse, 0, len(result.Processes)),
		Timeline:              result.Timeline,
		Rounds:                result.Rounds,
	}
	if response.Timeline == nil {
		response.Timeline = []core.ExecutionSlice{}
	}

	for _, p := range result.Processes {
		response.Details = append(response.Details, responses.ProcessResponse{
			ProcessId:      p.Pid,
			BurstTime:      p.BurstTime,
			ArrivalTime:    p.ArrivalTime,
			Priority:       p.Priority,
			WaitingTime:    p.WaitingTime,
			TurnAroundTime: p.TurnaroundTime,
			CompletionTime: p.CompletionTime,
			ResponseTime:   p.ResponseTime,
		})
	}
	return response
}
