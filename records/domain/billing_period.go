package domain

import (
	"time"

	"encore.dev/beta/errs"

	"encore.app/records/model"
)

const periodLayout = "2006-01"

// ResolveBillingPeriod turns an optional "YYYY-MM" period into the month
// aligned [from, to) range to bill. An empty period means the whole of the
// calendar month preceding today. Billing the current month or a future
// month is disallowed: those fail with FailedPrecondition, as opposed to the
// InvalidArgument returned for a malformed period string.
func ResolveBillingPeriod(period string, today time.Time) (model.BillingPeriod, error) {
	if period == "" {
		monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return model.BillingPeriod{
			FromDate: monthStart.AddDate(0, -1, 0),
			ToDate:   monthStart,
		}, nil
	}

	parsed, err := time.Parse(periodLayout, period)
	if err != nil || len(period) != len(periodLayout) {
		return model.BillingPeriod{}, &errs.Error{Code: errs.InvalidArgument, Message: "period must be in YYYY-MM format"}
	}

	if parsed.Year() == today.Year() && parsed.Month() == today.Month() {
		return model.BillingPeriod{}, &errs.Error{Code: errs.FailedPrecondition, Message: "cannot bill the current month while it is in progress"}
	}
	if parsed.Year() > today.Year() || (parsed.Year() == today.Year() && parsed.Month() > today.Month()) {
		return model.BillingPeriod{}, &errs.Error{Code: errs.FailedPrecondition, Message: "cannot bill a future month"}
	}

	fromDate := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, today.Location())
	return model.BillingPeriod{
		FromDate: fromDate,
		ToDate:   fromDate.AddDate(0, 1, 0),
	}, nil
}
