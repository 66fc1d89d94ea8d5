package records

import (
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/records/business/record"
	"encore.app/records/store"
)

var callRecordsDB = sqldb.NewDatabase("call_records", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var validate = validator.New()

//encore:service
type Service struct {
	business record.Business
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](callRecordsDB)

	rlog.Info("initializing call records store")
	st := store.NewStore(pgxdb)

	return &Service{
		business: record.NewRecordBusiness(st.CallRecords),
	}, nil
}
