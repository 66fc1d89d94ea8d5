package record

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/records/mocks/store/call_record_store"
	"encore.app/records/model"
	"encore.app/records/store/callrecords"
)

func TestCreateCallStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := call_record_store.NewMockQuerier(ctrl)
	business := &business{callRecords: mockStore}

	callID := uuid.NewString()
	timestamp := time.Date(2020, 3, 9, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		input         *model.CallStartRecord
		mockReturn    callrecords.CallStartRecord
		mockError     error
		expectedError string
		expectSuccess bool
	}{
		{
			name: "happy_case",
			input: &model.CallStartRecord{
				CallID:      callID,
				Timestamp:   timestamp,
				Source:      "99988526423",
				Destination: "9993468278",
			},
			mockReturn: callrecords.CallStartRecord{
				ID:          1,
				CallID:      callID,
				Timestamp:   pgtype.Timestamptz{Time: timestamp, Valid: true},
				Source:      "99988526423",
				Destination: "9993468278",
			},
			mockError:     nil,
			expectSuccess: true,
		},
		{
			name: "duplicate_call_id",
			input: &model.CallStartRecord{
				CallID:      callID,
				Timestamp:   timestamp,
				Source:      "99988526423",
				Destination: "9993468278",
			},
			mockReturn:    callrecords.CallStartRecord{},
			mockError:     &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectedError: "call_id already has a start record",
			expectSuccess: false,
		},
		{
			name: "general_error",
			input: &model.CallStartRecord{
				CallID:      callID,
				Timestamp:   timestamp,
				Source:      "99988526423",
				Destination: "9993468278",
			},
			mockReturn:    callrecords.CallStartRecord{},
			mockError:     assert.AnError,
			expectedError: "failed to create call start record",
			expectSuccess: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockStore.EXPECT().
				CreateCallStart(gomock.Any(), gomock.Any()).
				Return(tc.mockReturn, tc.mockError)

			result, err := business.CreateCallStart(context.Background(), tc.input)

			if tc.expectSuccess {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tc.mockReturn.ID, result.ID)
				assert.Equal(t, tc.mockReturn.CallID, result.CallID)
				assert.Equal(t, tc.mockReturn.Source, result.Source)
				assert.Equal(t, tc.mockReturn.Destination, result.Destination)
				assert.True(t, result.Timestamp.Equal(timestamp))
			} else {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tc.expectedError)
			}
		})
	}
}
