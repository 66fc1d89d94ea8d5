package record

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/records/domain"
	"encore.app/records/model"
	"encore.app/records/store/callrecords"
)

// GetBill assembles the telephony bill for a source over the resolved
// billing period. Errors from the period resolver and the call matcher are
// propagated unchanged.
func (b *business) GetBill(ctx context.Context, source, period string) (*model.TelephonyBill, error) {
	billingPeriod, err := domain.ResolveBillingPeriod(period, now().UTC())
	if err != nil {
		return nil, err
	}

	calls, err := b.GetCalls(ctx, billingPeriod.FromDate, billingPeriod.ToDate, source)
	if err != nil {
		return nil, err
	}

	return &model.TelephonyBill{
		Source:      source,
		StartPeriod: billingPeriod.FromDate,
		EndPeriod:   billingPeriod.ToDate,
		Calls:       calls,
	}, nil
}

// GetCalls matches every call that ended inside [fromDate, toDate) with its
// start record via a hash join on call_id. End records with no start record
// never reach a bill. The source filter applies after the join; results are
// ordered by end timestamp with call_id as the deterministic tie-break.
func (b *business) GetCalls(ctx context.Context, fromDate, toDate time.Time, source string) ([]model.BilledCall, error) {
	if fromDate.After(toDate) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "starting date cannot be higher than ending date"}
	}

	callEnds, err := b.callRecords.ListCallEndsInPeriod(ctx, callrecords.ListCallEndsInPeriodParams{
		FromDate: pgtype.Timestamptz{Time: fromDate, Valid: true},
		ToDate:   pgtype.Timestamptz{Time: toDate, Valid: true},
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list call end records"}
	}
	if len(callEnds) == 0 {
		return []model.BilledCall{}, nil
	}

	callIDs := make([]string, len(callEnds))
	for i, callEnd := range callEnds {
		callIDs[i] = callEnd.CallID
	}

	callStarts, err := b.callRecords.ListCallStartsByCallIDs(ctx, callIDs)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list call start records"}
	}

	startsByCallID := make(map[string]callrecords.CallStartRecord, len(callStarts))
	for _, callStart := range callStarts {
		startsByCallID[callStart.CallID] = callStart
	}

	calls := []model.BilledCall{}
	for _, callEnd := range callEnds {
		callStart, ok := startsByCallID[callEnd.CallID]
		if !ok {
			continue
		}
		if source != "" && callStart.Source != source {
			continue
		}

		calls = append(calls, model.BilledCall{
			CallID:      callEnd.CallID,
			Start:       callStart.Timestamp.Time,
			End:         callEnd.Timestamp.Time,
			Source:      callStart.Source,
			Destination: callStart.Destination,
			Duration:    model.Duration(callEnd.Timestamp.Time.Sub(callStart.Timestamp.Time)),
			Price:       decimalFromNumeric(callEnd.Price),
		})
	}

	sort.Slice(calls, func(i, j int) bool {
		if calls[i].End.Equal(calls[j].End) {
			return calls[i].CallID < calls[j].CallID
		}
		return calls[i].End.Before(calls[j].End)
	})

	return calls, nil
}
