// Package model defines shared data structures.
package model

import "time"

// Config defines counter session settings.
type Config struct {
	Task     string
	AutoSave bool
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Task        string
	Since       *time.Time
	Last        int
	CurveWindow int
}

// SessionRecord captures a finished counting session.
type SessionRecord struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Task       string
	Success    int
	Fail       int
	DurationMs int64
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Task       string
	Success    int
	Fail       int
	DurationMs int64
}
