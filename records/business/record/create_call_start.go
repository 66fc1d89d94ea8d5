package record

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/records/model"
	"encore.app/records/store/callrecords"
)

// CreateCallStart persists a "call started" event. Each call_id may have at
// most one start record; duplicates are rejected by the unique index.
func (b *business) CreateCallStart(ctx context.Context, record *model.CallStartRecord) (*model.CallStartRecord, error) {
	dbRecord, err := b.callRecords.CreateCallStart(ctx, callrecords.CreateCallStartParams{
		CallID:      record.CallID,
		Timestamp:   pgtype.Timestamptz{Time: record.Timestamp, Valid: true},
		Source:      record.Source,
		Destination: record.Destination,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "call_id already has a start record"}
		}

		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create call start record"}
	}

	return convertDBCallStartToModel(dbRecord), nil
}

// convertDBCallStartToModel converts a database CallStartRecord to its domain model
func convertDBCallStartToModel(dbRecord callrecords.CallStartRecord) *model.CallStartRecord {
	return &model.CallStartRecord{
		ID:          dbRecord.ID,
		CallID:      dbRecord.CallID,
		Timestamp:   dbRecord.Timestamp.Time,
		Source:      dbRecord.Source,
		Destination: dbRecord.Destination,
		CreatedAt:   dbRecord.CreatedAt.Time,
	}
}
