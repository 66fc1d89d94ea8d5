package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CallStartRecord marks the beginning of a telephone call. It is immutable
// once created; the matching CallEndRecord references it by call_id.
type CallStartRecord struct {
	ID          int32     `json:"id"`
	CallID      string    `json:"call_id"`
	Timestamp   time.Time `json:"timestamp"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	CreatedAt   time.Time `json:"created_at"`
}

// CallEndRecord marks the end of a telephone call. Price is computed once,
// when the record is created, from the matching start record.
type CallEndRecord struct {
	ID        int32            `json:"id"`
	CallID    string           `json:"call_id"`
	Timestamp time.Time        `json:"timestamp"`
	Price     *decimal.Decimal `json:"price"`
	CreatedAt time.Time        `json:"created_at"`
}

// BilledCall is the joined view of a start/end record pair. It is computed
// per billing query and never persisted.
type BilledCall struct {
	CallID      string          `json:"call_id"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Source      string          `json:"source,omitempty"`
	Destination string          `json:"destination"`
	Duration    Duration        `json:"duration"`
	Price       decimal.Decimal `json:"price"`
}

// TelephonyBill is the unpaginated bill for one source over one period.
type TelephonyBill struct {
	Source      string       `json:"source"`
	StartPeriod time.Time    `json:"start_period"`
	EndPeriod   time.Time    `json:"end_period"`
	Calls       []BilledCall `json:"calls"`
}

// Duration is a call duration rendered as "2h35m10s" in responses.
// Whole-second precision; sub-second remainders are dropped.
type Duration time.Duration

func (d Duration) String() string {
	total := int64(time.Duration(d) / time.Second)
	hours, total := total/3600, total%3600
	minutes, seconds := total/60, total%60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}
