package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// RunTime is a run duration carried over the wire as a Go duration string
// ("1h23m45.678s") and stored as integer milliseconds.
type RunTime time.Duration

func (t RunTime) Duration() time.Duration {
	return time.Duration(t)
}

func (t RunTime) Milliseconds() int64 {
	return time.Duration(t).Milliseconds()
}

func RunTimeFromMilliseconds(ms int64) RunTime {
	return RunTime(time.Duration(ms) * time.Millisecond)
}

func (t RunTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(t).String())
}

func (t *RunTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("run time must be a duration string: %w", err)
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse run time %q: %w", raw, err)
	}
	if d <= 0 {
		return fmt.Errorf("run time must be positive, got %q", raw)
	}
	*t = RunTime(d)
	return nil
}

type Run struct {
	ID          int64     `json:"run_id"`
	UserID      int64     `json:"user_id"`
	GameID      int64     `json:"game_id"`
	PlatformID  int64     `json:"platform_id"`
	Time        RunTime   `json:"time"`
	Type        string    `json:"type"`
	VideoLink   string    `json:"video_link"`
	Date        time.Time `json:"date"`
	ConfirmedBy *int64    `json:"confirmed_by"`
}
