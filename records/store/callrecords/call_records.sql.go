package callrecords

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createCallStart = `-- name: CreateCallStart :one
INSERT INTO call_start_records (call_id, timestamp, source, destination)
VALUES ($1, $2, $3, $4)
RETURNING id, call_id, timestamp, source, destination, created_at
`

type CreateCallStartParams struct {
	CallID      string
	Timestamp   pgtype.Timestamptz
	Source      string
	Destination string
}

func (q *Queries) CreateCallStart(ctx context.Context, arg CreateCallStartParams) (CallStartRecord, error) {
	row := q.db.QueryRow(ctx, createCallStart,
		arg.CallID,
		arg.Timestamp,
		arg.Source,
		arg.Destination,
	)
	var i CallStartRecord
	err := row.Scan(
		&i.ID,
		&i.CallID,
		&i.Timestamp,
		&i.Source,
		&i.Destination,
		&i.CreatedAt,
	)
	return i, err
}

const createCallEnd = `-- name: CreateCallEnd :one
INSERT INTO call_end_records (call_id, timestamp, price)
VALUES ($1, $2, $3)
RETURNING id, call_id, timestamp, price, created_at
`

type CreateCallEndParams struct {
	CallID    string
	Timestamp pgtype.Timestamptz
	Price     pgtype.Numeric
}

func (q *Queries) CreateCallEnd(ctx context.Context, arg CreateCallEndParams) (CallEndRecord, error) {
	row := q.db.QueryRow(ctx, createCallEnd, arg.CallID, arg.Timestamp, arg.Price)
	var i CallEndRecord
	err := row.Scan(
		&i.ID,
		&i.CallID,
		&i.Timestamp,
		&i.Price,
		&i.CreatedAt,
	)
	return i, err
}

const getCallStartByCallID = `-- name: GetCallStartByCallID :one
SELECT id, call_id, timestamp, source, destination, created_at
FROM call_start_records
WHERE call_id = $1
`

func (q *Queries) GetCallStartByCallID(ctx context.Context, callID string) (CallStartRecord, error) {
	row := q.db.QueryRow(ctx, getCallStartByCallID, callID)
	var i CallStartRecord
	err := row.Scan(
		&i.ID,
		&i.CallID,
		&i.Timestamp,
		&i.Source,
		&i.Destination,
		&i.CreatedAt,
	)
	return i, err
}

const listCallEndsInPeriod = `-- name: ListCallEndsInPeriod :many
SELECT id, call_id, timestamp, price, created_at
FROM call_end_records
WHERE timestamp >= $1 AND timestamp < $2
ORDER BY timestamp, call_id
`

type ListCallEndsInPeriodParams struct {
	FromDate pgtype.Timestamptz
	ToDate   pgtype.Timestamptz
}

func (q *Queries) ListCallEndsInPeriod(ctx context.Context, arg ListCallEndsInPeriodParams) ([]CallEndRecord, error) {
	rows, err := q.db.Query(ctx, listCallEndsInPeriod, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CallEndRecord
	for rows.Next() {
		var i CallEndRecord
		if err := rows.Scan(
			&i.ID,
			&i.CallID,
			&i.Timestamp,
			&i.Price,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listCallStartsByCallIDs = `-- name: ListCallStartsByCallIDs :many
SELECT id, call_id, timestamp, source, destination, created_at
FROM call_start_records
WHERE call_id = ANY($1::varchar[])
`

func (q *Queries) ListCallStartsByCallIDs(ctx context.Context, callIds []string) ([]CallStartRecord, error) {
	rows, err := q.db.Query(ctx, listCallStartsByCallIDs, callIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CallStartRecord
	for rows.Next() {
		var i CallStartRecord
		if err := rows.Scan(
			&i.ID,
			&i.CallID,
			&i.Timestamp,
			&i.Source,
			&i.Destination,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
