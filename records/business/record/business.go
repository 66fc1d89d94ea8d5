package record

import (
	"context"
	"time"

	"encore.app/records/model"
	"encore.app/records/store/callrecords"
)

type Business interface {
	CreateCallStart(ctx context.Context, record *model.CallStartRecord) (*model.CallStartRecord, error)
	CreateCallEnd(ctx context.Context, record *model.CallEndRecord) (*model.CallEndRecord, error)
	GetCalls(ctx context.Context, fromDate, toDate time.Time, source string) ([]model.BilledCall, error)
	GetBill(ctx context.Context, source, period string) (*model.TelephonyBill, error)
}

// business handles call record persistence and bill assembly
type business struct {
	callRecords callrecords.Querier
}

// now is an indirection over time.Now so tests can pin the billing "today".
var now = time.Now

// NewRecordBusiness creates the call record business layer
func NewRecordBusiness(callRecords callrecords.Querier) Business {
	return &business{
		callRecords: callRecords,
	}
}
