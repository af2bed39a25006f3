package mysql

import (
	"database/sql"

	db2 "github.com/blogline/blogline-be/db"
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/mysql"
)

type MySQLDB struct {
	*PostDB
	*CommentDB
	*GroupDB
	*FollowDB
	*UserDB
	sess  db.Session
	sqlDB *sql.DB
}

// GetDatabase opens the backing store. dsn comes from the config module; this
// package never reads the environment itself.
func GetDatabase(dsn string, maxConns int) (db2.Database, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(maxConns)
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetConnMaxIdleTime(0)

	sess, err := mysql.New(sqlDB)
	if err != nil {
		return nil, err
	}

	return &MySQLDB{
		PostDB:    getPostDB(sess),
		CommentDB: getCommentDB(sess),
		GroupDB:   getGroupDB(sess),
		FollowDB:  getFollowDB(sess),
		UserDB:    getUserDB(sess),
		sess:      sess,
		sqlDB:     sqlDB,
	}, nil
}

func (mdb *MySQLDB) GetSQLDB() *sql.DB {
	return mdb.sqlDB
}

func (mdb *MySQLDB) Close() error {
	return mdb.sess.Close()
}
