package helper

import "testing"

const dayMS = int64(86399999) // 24h minus 1ms, inclusive window span

func TestDayRangeMS(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		tz        int
		wantStart int64
		wantEnd   int64
	}{
		{"utc", "2025-11-09", 0, 1762646400000, 1762732799999},
		{"utc+8", "2025-11-09", 8, 1762617600000, 1762703999999},
		{"utc-5", "2025-11-09", -5, 1762664400000, 1762750799999},
		{"leap day", "2024-02-29", 0, 1709164800000, 1709251199999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := DayRangeMS(tt.date, tt.tz)
			if err != nil {
				t.Fatalf("DayRangeMS(%q, %d) error: %v", tt.date, tt.tz, err)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("DayRangeMS(%q, %d) = [%d, %d], want [%d, %d]",
					tt.date, tt.tz, start, end, tt.wantStart, tt.wantEnd)
			}
			if end-start != dayMS {
				t.Errorf("window span = %d, want %d", end-start, dayMS)
			}
		})
	}
}

func TestDayRangeMSOffsetShift(t *testing.T) {
	// A later local midnight at a larger positive offset occurs earlier in
	// absolute time: +1h offset shifts both bounds back by one hour.
	for tz := -12; tz < 14; tz++ {
		start, end, err := DayRangeMS("2025-06-15", tz)
		if err != nil {
			t.Fatalf("tz=%d: %v", tz, err)
		}
		next, nextEnd, err := DayRangeMS("2025-06-15", tz+1)
		if err != nil {
			t.Fatalf("tz=%d: %v", tz+1, err)
		}
		if next-start != -3600000 || nextEnd-end != -3600000 {
			t.Errorf("tz %d -> %d shifted start by %d, end by %d, want -3600000",
				tz, tz+1, next-start, nextEnd-end)
		}
	}
}

func TestDayRangeMSInvalidDate(t *testing.T) {
	bad := []string{
		"",
		"2025-1-9",
		"2025/11/09",
		"20251109",
		"2025-13-01",
		"2025-02-30",
		"2025-11-09x",
		"abcd-ef-gh",
	}
	for _, date := range bad {
		if _, _, err := DayRangeMS(date, 0); err == nil {
			t.Errorf("DayRangeMS(%q) expected error", date)
		}
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		tz   int
		want string
	}{
		{8, "UTC+8"},
		{0, "UTC+0"},
		{-5, "UTC-5"},
		{12, "UTC+12"},
	}
	for _, tt := range tests {
		if got := FormatOffset(tt.tz); got != tt.want {
			t.Errorf("FormatOffset(%d) = %q, want %q", tt.tz, got, tt.want)
		}
	}
}
