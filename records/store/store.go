package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/records/store/callrecords"
)

// Store combines all domain-specific queriers
type Store struct {
	CallRecords callrecords.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		CallRecords: callrecords.New(db),
	}
}
