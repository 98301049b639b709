package util

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	tests := map[int]string{
		0:   "0:00",
		5:   "0:05",
		65:  "1:05",
		120: "2:00",
		-3:  "0:00",
	}
	for in, want := range tests {
		if got := FormatClock(in); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestStartOfDay(t *testing.T) {
	if err := SetLocation("America/New_York"); err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}

	// 03:30 UTC is still the previous evening on campus.
	utc := time.Date(2024, 3, 10, 3, 30, 0, 0, time.UTC)
	got := StartOfDay(utc)
	if got.Day() != 9 || got.Hour() != 0 || got.Location() != Location() {
		t.Errorf("StartOfDay = %v", got)
	}
}

func TestLocalDateTimeJSON(t *testing.T) {
	if err := SetLocation("UTC"); err != nil {
		t.Fatal(err)
	}
	defer SetLocation("America/New_York")

	ldt := NewLocalDateTime(time.Date(2024, 9, 2, 14, 5, 9, 0, time.UTC))
	b, err := json.Marshal(ldt)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2024-09-02T14:05:09"` {
		t.Errorf("Marshal = %s", b)
	}

	var back LocalDateTime
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(ldt.Time) {
		t.Errorf("round trip = %v, want %v", back, ldt)
	}

	var zero LocalDateTime
	if b, _ := json.Marshal(zero); string(b) != "null" {
		t.Errorf("zero Marshal = %s", b)
	}
}

func TestLocalDateTimeScan(t *testing.T) {
	var ldt LocalDateTime
	now := time.Now().Truncate(time.Second)
	if err := ldt.Scan(now); err != nil || !ldt.Equal(now) {
		t.Errorf("Scan(time.Time) = %v, %v", ldt, err)
	}
	if err := ldt.Scan("2024-01-02T03:04:05Z"); err != nil {
		t.Errorf("Scan(string) failed: %v", err)
	}
	if err := ldt.Scan(42); err == nil {
		t.Error("Scan(int) should fail")
	}
	if err := ldt.Scan(nil); err != nil || !ldt.IsZero() {
		t.Error("Scan(nil) should reset")
	}
}
