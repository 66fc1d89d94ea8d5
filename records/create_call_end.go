package records

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/records/model"
)

type CreateCallEndRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	CallID    string    `json:"call_id" validate:"required,max=50"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

type CallEndResponse struct {
	CallEnd model.CallEndRecord `json:"call_end"`
}

// The price is computed while persisting the end record, from the matching
// start record; the response carries it back to the caller.
//
//encore:api public path=/v1/call-records/finished method=POST tag:idempotency
func (s *Service) CreateCallEnd(ctx context.Context, req *CreateCallEndRequest) (*CallEndResponse, error) {
	result, err := s.business.CreateCallEnd(ctx, &model.CallEndRecord{
		CallID:    req.CallID,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		rlog.Error("failed to create call end record", "error", err, "call_id", req.CallID)
		return nil, err
	}

	return &CallEndResponse{
		CallEnd: *result,
	}, nil
}

// Validate implements validation for CreateCallEndRequest
func (r *CreateCallEndRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
