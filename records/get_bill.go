package records

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/records/model"
	"encore.app/records/pagination"
)

type GetBillRequest struct {
	Source   string `query:"source" validate:"required"`
	Period   string `query:"period"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

type TelephonyBillResponse struct {
	Source      string             `json:"source"`
	StartPeriod time.Time          `json:"start_period"`
	EndPeriod   time.Time          `json:"end_period"`
	Count       int                `json:"count"`
	Page        int                `json:"page"`
	PageSize    int                `json:"page_size"`
	Results     []model.BilledCall `json:"results"`
}

//encore:api public path=/v1/call-records/bills method=GET
func (s *Service) GetTelephonyBill(ctx context.Context, req *GetBillRequest) (*TelephonyBillResponse, error) {
	bill, err := s.business.GetBill(ctx, req.Source, req.Period)
	if err != nil {
		rlog.Error("failed to build telephony bill", "error", err, "source", req.Source, "period", req.Period)
		return nil, err
	}

	page := pagination.Paginate(bill.Calls, pagination.PageRequest{
		Page:     req.Page,
		PageSize: req.PageSize,
	})

	return &TelephonyBillResponse{
		Source:      bill.Source,
		StartPeriod: bill.StartPeriod,
		EndPeriod:   bill.EndPeriod,
		Count:       page.Count,
		Page:        page.Page,
		PageSize:    page.PageSize,
		Results:     page.Items,
	}, nil
}

// Validate implements validation for GetBillRequest. The source check runs
// before period resolution; the period format itself is validated by the
// billing period resolver.
func (r *GetBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
