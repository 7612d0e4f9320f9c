package responses

import "cpu-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      string `json:"process_id" yaml:"process_id"`
	BurstTime      int    `json:"burst_time" yaml:"burst_time"`
	ArrivalTime    int    `json:"arrival_time" yaml:"arrival_time"`
	Priority       int    `json:"priority" yaml:"priority"`
	WaitingTime    int    `json:"waiting_time" yaml:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time" yaml:"turn_around_time"`
	CompletionTime int    `json:"completion_time" yaml:"completion_time"`
	ResponseTime   int    `json:"response_time" yaml:"response_time"`
}

// ScheduleResponse is the outcome of one simulation. Averages are rounded
// for display and are null when Computed is false.
type ScheduleResponse struct {
	RunId         string `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Algorithm     string `json:"algorithm" yaml:"algorithm"`
	AlgorithmName string `json:"algorithm_name" yaml:"algorithm_name"`
	TimeQuantum   int    `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	Computed      bool   `json:"computed" yaml:"computed"`

	TotalTime      int     `json:"total_time" yaml:"total_time"`
	IdleTime       int     `json:"idle_time" yaml:"idle_time"`
	CpuUtilization float64 `json:"cpu_utilization" yaml:"cpu_utilization"`
	CpuThroughput  float64 `json:"cpu_throughput" yaml:"cpu_throughput"`

	AverageWaitingTime    *float64 `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageTurnAroundTime *float64 `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	AverageResponseTime   *float64 `json:"average_response_time" yaml:"average_response_time"`

	Details  []ProcessResponse     `json:"details" yaml:"details"`
	Timeline []core.ExecutionSlice `json:"timeline" yaml:"timeline"`
	Rounds   []core.Round          `json:"rounds,omitempty" yaml:"rounds,omitempty"`
}

type AlgorithmResponse struct {
	Id          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Preemptive  bool   `json:"preemptive" yaml:"preemptive"`
	Explanation string `json:"explanation" yaml:"explanation"`
}
