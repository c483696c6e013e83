package utils

import "time"

// NowUnix returns the current wall clock as unix seconds
func NowUnix() int64 {
	return time.Now().Unix()
}

// ElapsedMinutes returns num of minutes between two unix-second timestamps
func ElapsedMinutes(from int64, to int64) float64 {
	return float64(to-from) / 60.0
}
