package dbx

import (
	"testing"
	"time"
)

func TestRowAccessorsNormalizeDriverValues(t *testing.T) {
	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	r := Row{
		"pg_numeric": "4.5",
		"sqlite_avg": 4.5,
		"bytes_int":  []byte("42"),
		"int":        int64(7),
		"flag_int":   int64(1),
		"flag_str":   "t",
		"ts":         ts,
		"ts_str":     "2025-03-01 10:00:00",
		"null":       nil,
	}

	if r.Float64("pg_numeric") != 4.5 || r.Float64("sqlite_avg") != 4.5 {
		t.Fatalf("Float64 mismatch")
	}
	if r.Int64("bytes_int") != 42 || r.Int("int") != 7 {
		t.Fatalf("Int64 mismatch")
	}
	if !r.Bool("flag_int") || !r.Bool("flag_str") || r.Bool("null") {
		t.Fatalf("Bool mismatch")
	}
	if !r.Time("ts").Equal(ts) || !r.Time("ts_str").Equal(ts) {
		t.Fatalf("Time mismatch: %v / %v", r.Time("ts"), r.Time("ts_str"))
	}
	if r.NullUint("null") != nil {
		t.Fatalf("NullUint(null) should be nil")
	}
	if p := r.NullUint("int"); p == nil || *p != 7 {
		t.Fatalf("NullUint(int) = %v", p)
	}
	if r.String("null") != "" || r.String("bytes_int") != "42" {
		t.Fatalf("String mismatch")
	}
}
