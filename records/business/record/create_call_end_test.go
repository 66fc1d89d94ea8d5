package record

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/records/mocks/store/call_record_store"
	"encore.app/records/model"
	"encore.app/records/store/callrecords"
)

func TestCreateCallEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := call_record_store.NewMockQuerier(ctrl)
	business := &business{callRecords: mockStore}

	callID := uuid.NewString()
	startTimestamp := time.Date(2020, 3, 9, 12, 0, 0, 0, time.UTC)
	endTimestamp := startTimestamp.Add(time.Hour)

	callStart := callrecords.CallStartRecord{
		ID:          1,
		CallID:      callID,
		Timestamp:   pgtype.Timestamptz{Time: startTimestamp, Valid: true},
		Source:      "99988526423",
		Destination: "9993468278",
	}

	t.Run("happy_case_computes_price_at_insert", func(t *testing.T) {
		mockStore.EXPECT().
			GetCallStartByCallID(gomock.Any(), callID).
			Return(callStart, nil)

		var insertedParams callrecords.CreateCallEndParams
		mockStore.EXPECT().
			CreateCallEnd(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg callrecords.CreateCallEndParams) (callrecords.CallEndRecord, error) {
				insertedParams = arg
				return callrecords.CallEndRecord{
					ID:        1,
					CallID:    arg.CallID,
					Timestamp: arg.Timestamp,
					Price:     arg.Price,
				}, nil
			})

		result, err := business.CreateCallEnd(context.Background(), &model.CallEndRecord{
			CallID:    callID,
			Timestamp: endTimestamp,
		})

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, callID, result.CallID)

		// 60 minutes inside the standard window: 0.36 + 60 * 0.09
		assert.True(t, insertedParams.Price.Valid)
		assert.NotNil(t, result.Price)
		assert.Equal(t, "5.76", result.Price.StringFixed(2))
		assert.True(t, decimal.NewFromBigInt(insertedParams.Price.Int, insertedParams.Price.Exp).Equal(*result.Price))
	})

	t.Run("no_matching_call_start", func(t *testing.T) {
		mockStore.EXPECT().
			GetCallStartByCallID(gomock.Any(), callID).
			Return(callrecords.CallStartRecord{}, pgx.ErrNoRows)

		result, err := business.CreateCallEnd(context.Background(), &model.CallEndRecord{
			CallID:    callID,
			Timestamp: endTimestamp,
		})

		assert.Nil(t, result)
		var e *errs.Error
		assert.ErrorAs(t, err, &e)
		assert.Equal(t, errs.NotFound, e.Code)
	})

	t.Run("end_before_start_is_rejected", func(t *testing.T) {
		mockStore.EXPECT().
			GetCallStartByCallID(gomock.Any(), callID).
			Return(callStart, nil)

		result, err := business.CreateCallEnd(context.Background(), &model.CallEndRecord{
			CallID:    callID,
			Timestamp: startTimestamp.Add(-time.Minute),
		})

		assert.Nil(t, result)
		var e *errs.Error
		assert.ErrorAs(t, err, &e)
		assert.Equal(t, errs.InvalidArgument, e.Code)
		assert.Contains(t, err.Error(), "cannot be earlier than call start")
	})

	t.Run("duplicate_call_id", func(t *testing.T) {
		mockStore.EXPECT().
			GetCallStartByCallID(gomock.Any(), callID).
			Return(callStart, nil)
		mockStore.EXPECT().
			CreateCallEnd(gomock.Any(), gomock.Any()).
			Return(callrecords.CallEndRecord{}, &pgconn.PgError{Code: pgerrcode.UniqueViolation})

		result, err := business.CreateCallEnd(context.Background(), &model.CallEndRecord{
			CallID:    callID,
			Timestamp: endTimestamp,
		})

		assert.Nil(t, result)
		var e *errs.Error
		assert.ErrorAs(t, err, &e)
		assert.Equal(t, errs.AlreadyExists, e.Code)
	})

	t.Run("store_lookup_error", func(t *testing.T) {
		mockStore.EXPECT().
			GetCallStartByCallID(gomock.Any(), callID).
			Return(callrecords.CallStartRecord{}, assert.AnError)

		result, err := business.CreateCallEnd(context.Background(), &model.CallEndRecord{
			CallID:    callID,
			Timestamp: endTimestamp,
		})

		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to look up call start record")
	})
}
