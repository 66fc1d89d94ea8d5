package model

import (
	"time"
)

// BillingPeriod is a month-aligned date range, inclusive of FromDate and
// exclusive of ToDate.
type BillingPeriod struct {
	FromDate time.Time `json:"from_date"`
	ToDate   time.Time `json:"to_date"`
}
