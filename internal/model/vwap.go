package model

import "time"

// DailyVWAP is the closing VWAP of one trading day and its change from the
// previous trading day. The first record in a series has Change == 0.
type DailyVWAP struct {
	Date   time.Time
	VWAP   float64
	Change float64
}

// ChangeStats describes the distribution of day-over-day VWAP changes.
type ChangeStats struct {
	Mean    float64
	StdDev  float64
	Samples int
}
