package helper

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// DayRangeMS maps a calendar date at a fixed UTC offset to the inclusive
// [start, end] unix-millisecond window of that local day: 00:00:00.000
// through 23:59:59.999. The window is built by calendar arithmetic, not by
// adding 24h to the start.
func DayRangeMS(date string, tzOffsetHours int) (startMS, endMS int64, err error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid date %q, want YYYY-MM-DD", date)
	}

	loc := time.FixedZone(FormatOffset(tzOffsetHours), tzOffsetHours*3600)
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	end := time.Date(y, m, d, 23, 59, 59, 999_000_000, loc)
	return start.UnixMilli(), end.UnixMilli(), nil
}

// FormatOffset renders a whole-hour UTC offset as "UTC+8" / "UTC-5".
func FormatOffset(tzOffsetHours int) string {
	return fmt.Sprintf("UTC%+d", tzOffsetHours)
}
