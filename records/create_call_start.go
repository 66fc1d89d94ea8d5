package records

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/records/model"
)

type CreateCallStartRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	CallID      string    `json:"call_id" validate:"required,max=50"`
	Timestamp   time.Time `json:"timestamp" validate:"required"`
	Source      string    `json:"source" validate:"required,max=30"`
	Destination string    `json:"destination" validate:"required,numeric,min=10,max=11"`
}

type CallStartResponse struct {
	CallStart model.CallStartRecord `json:"call_start"`
}

//encore:api public path=/v1/call-records/started method=POST tag:idempotency
func (s *Service) CreateCallStart(ctx context.Context, req *CreateCallStartRequest) (*CallStartResponse, error) {
	result, err := s.business.CreateCallStart(ctx, &model.CallStartRecord{
		CallID:      req.CallID,
		Timestamp:   req.Timestamp,
		Source:      req.Source,
		Destination: req.Destination,
	})
	if err != nil {
		rlog.Error("failed to create call start record", "error", err, "call_id", req.CallID)
		return nil, err
	}

	return &CallStartResponse{
		CallStart: *result,
	}, nil
}

// Validate implements validation for CreateCallStartRequest using go-playground/validator
func (r *CreateCallStartRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
