package callrecords

import (
	"context"
)

type Querier interface {
	CreateCallStart(ctx context.Context, arg CreateCallStartParams) (CallStartRecord, error)
	CreateCallEnd(ctx context.Context, arg CreateCallEndParams) (CallEndRecord, error)
	GetCallStartByCallID(ctx context.Context, callID string) (CallStartRecord, error)
	ListCallEndsInPeriod(ctx context.Context, arg ListCallEndsInPeriodParams) ([]CallEndRecord, error)
	ListCallStartsByCallIDs(ctx context.Context, callIds []string) ([]CallStartRecord, error)
}

var _ Querier = (*Queries)(nil)
