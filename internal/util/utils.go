package util

import (
	"math"
	"strconv"

	"cpu-scheduler/internal/core"
)

// NotAvailable is what averages render as when nothing was scheduled.
const NotAvailable = "-"

// Averages holds exact means over the scheduled processes. Available is
// false for an empty set, in which case the means are meaningless.
type Averages struct {
	Count          int
	WaitingTime    float64
	TurnaroundTime float64
	ResponseTime   float64
	Available      bool
}

func CalculateAverage(processes []core.Process) Averages {
	if len(processes) == 0 {
		return Averages{}
	}

	var waitingTimeSum, turnAroundTimeSum, responseTimeSum int
	for _, p := range processes {
		waitingTimeSum += p.WaitingTime
		turnAroundTimeSum += p.TurnaroundTime
		responseTimeSum += p.ResponseTime
	}

	count := float64(len(processes))
	return Averages{
		Count:          len(processes),
		WaitingTime:    float64(waitingTimeSum) / count,
		TurnaroundTime: float64(turnAroundTimeSum) / count,
		ResponseTime:   float64(responseTimeSum) / count,
		Available:      true,
	}
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAverage renders v with two decimals, or NotAvailable.
func FormatAverage(v float64, available bool) string {
	if !available {
		return NotAvailable
	}
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}

// RoundedPtr returns the display value for JSON, nil when unavailable.
func RoundedPtr(v float64, available bool) *float64 {
	if !available {
		return nil
	}
	r := Round2(v)
	return &r
}
