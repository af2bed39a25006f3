package dao

import "database/sql"

type NullInt64 struct {
	sql.NullInt64
}

// AsInt returns -1 when the column is NULL.
func (ni *NullInt64) AsInt() int64 {
	if !ni.NullInt64.Valid {
		return -1
	}
	return ni.NullInt64.Int64
}

func NullInt64Of(val *int64) NullInt64 {
	if val == nil {
		return NullInt64{}
	}
	return NullInt64{sql.NullInt64{Int64: *val, Valid: true}}
}
