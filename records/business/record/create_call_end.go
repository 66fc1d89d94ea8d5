package record

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/records/domain"
	"encore.app/records/model"
	"encore.app/records/store/callrecords"
)

// CreateCallEnd persists a "call ended" event. The end must reference an
// existing start record and may not precede it. The price is computed here,
// exactly once, from the matched start timestamp; it is never recomputed.
func (b *business) CreateCallEnd(ctx context.Context, record *model.CallEndRecord) (*model.CallEndRecord, error) {
	callStart, err := b.callRecords.GetCallStartByCallID(ctx, record.CallID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "call_id does not have a start record"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to look up call start record"}
	}

	if record.Timestamp.Before(callStart.Timestamp.Time) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "call end timestamp cannot be earlier than call start timestamp"}
	}

	price, err := domain.CalculatePrice(callStart.Timestamp.Time, record.Timestamp)
	if err != nil {
		return nil, err
	}

	dbRecord, err := b.callRecords.CreateCallEnd(ctx, callrecords.CreateCallEndParams{
		CallID:    record.CallID,
		Timestamp: pgtype.Timestamptz{Time: record.Timestamp, Valid: true},
		Price:     numericFromDecimal(price),
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "call_id already has an end record"}
		}

		return nil, &errs.Error{Code: errs.Internal, Message: "failed to create call end record"}
	}

	return convertDBCallEndToModel(dbRecord), nil
}

// convertDBCallEndToModel converts a database CallEndRecord to its domain model
func convertDBCallEndToModel(dbRecord callrecords.CallEndRecord) *model.CallEndRecord {
	record := &model.CallEndRecord{
		ID:        dbRecord.ID,
		CallID:    dbRecord.CallID,
		Timestamp: dbRecord.Timestamp.Time,
		CreatedAt: dbRecord.CreatedAt.Time,
	}

	if dbRecord.Price.Valid {
		price := decimalFromNumeric(dbRecord.Price)
		record.Price = &price
	}

	return record
}

func numericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func decimalFromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
