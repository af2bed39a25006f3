package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const mysqlDupEntry = 1062

// IsDupKeyErr reports whether err is a MySQL unique-key violation. upper/db
// wraps the driver error, so unwrap through the chain.
func IsDupKeyErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry
}
