package callrecords

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type CallStartRecord struct {
	ID          int32
	CallID      string
	Timestamp   pgtype.Timestamptz
	Source      string
	Destination string
	CreatedAt   pgtype.Timestamptz
}

type CallEndRecord struct {
	ID        int32
	CallID    string
	Timestamp pgtype.Timestamptz
	Price     pgtype.Numeric
	CreatedAt pgtype.Timestamptz
}
