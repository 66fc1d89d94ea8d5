package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
)

// Day/night tariff. Minutes inside the standard window are billed at
// MinuteRate; the reduced window (22:00-06:00) is free. ConnectionFee is
// charged once per call regardless of duration.
var (
	MinuteRate    = decimal.NewFromFloat(0.09)
	ConnectionFee = decimal.NewFromFloat(0.36)
)

const (
	standardWindowStartHour = 6
	standardWindowEndHour   = 22
)

// CalculatePrice derives the billable price of a call from its start and end
// timestamps. Billable minutes are the whole minutes spent inside the
// standard window across every day the call touches; partial minutes are not
// rounded up. The result is rounded to 2 decimal places, half away from zero.
// Deterministic and side-effect free.
func CalculatePrice(start, end time.Time) (decimal.Decimal, error) {
	if start.IsZero() || end.IsZero() {
		return decimal.Zero, &errs.Error{Code: errs.InvalidArgument, Message: "call start and end timestamps are required"}
	}
	if start.After(end) {
		return decimal.Zero, &errs.Error{Code: errs.InvalidArgument, Message: "call start cannot be later than call end"}
	}

	minutes := billableMinutes(start, end)
	price := ConnectionFee.Add(MinuteRate.Mul(decimal.NewFromInt(minutes)))

	return price.Round(2), nil
}

// billableMinutes walks every calendar day the call spans, clamps the call to
// that day's 06:00-22:00 window and sums the overlap. Intervening full days
// contribute the entire 16 hour window. Windows are taken in the wall clock
// of the start timestamp's location.
func billableMinutes(start, end time.Time) int64 {
	loc := start.Location()
	y, m, d := start.In(loc).Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)
	ey, em, ed := end.In(loc).Date()
	lastDay := time.Date(ey, em, ed, 0, 0, 0, 0, loc)

	var seconds int64
	for ; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		windowStart := time.Date(day.Year(), day.Month(), day.Day(), standardWindowStartHour, 0, 0, 0, loc)
		windowEnd := time.Date(day.Year(), day.Month(), day.Day(), standardWindowEndHour, 0, 0, 0, loc)

		from, to := start, end
		if from.Before(windowStart) {
			from = windowStart
		}
		if to.After(windowEnd) {
			to = windowEnd
		}
		if to.After(from) {
			seconds += int64(to.Sub(from) / time.Second)
		}
	}

	return seconds / 60
}
