package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

func main() {
	DownloadRecordings()
}

// DownloadRecordings saves every uploaded recording as two files in a folder
// named after the user: the session (.polygonpulse-<session version>.yaml)
// and the GIF exported from it.
func DownloadRecordings() {
	db := ConnectToDbSql()
	defer func(db *sql.DB) { Check(db.Close()) }(db)

	rows, err := db.Query("SELECT " +
		"upload_moment, " +
		"user, " +
		"release_version, " +
		"COALESCE(session_version, -1), " +
		"id, " +
		"session, " +
		"gif " +
		"FROM recordings")
	Check(err)
	defer func(rows *sql.Rows) { Check(rows.Close()) }(rows)

	dbRows := []dbRow{}
	for rows.Next() {
		row := dbRow{}
		err = rows.Scan(&row.uploadMoment, &row.user, &row.releaseVersion,
			&row.sessionVersion, &row.id, &row.session, &row.gif)
		Check(err)
		dbRows = append(dbRows, row)
	}
	Check(rows.Err())

	for i := range dbRows {
		r := &dbRows[i]
		dir := r.user
		MakeDir(dir)
		m := r.uploadMoment
		base := fmt.Sprintf("%s/%d%02d%02d-%02d%02d%02d-%s", dir, m.Year(),
			m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second(), r.id)
		if r.sessionVersion == -1 {
			// A NULL session version means the recording was uploaded by a
			// release that didn't version its sessions.
			WriteFile(base+".polygonpulse.yaml", r.session)
		} else {
			WriteFile(fmt.Sprintf("%s.polygonpulse-%d.yaml", base,
				r.sessionVersion), r.session)
		}
		if len(r.gif) > 0 {
			WriteFile(base+".gif", r.gif)
		}
	}
	slog.Info("downloaded recordings", "count", len(dbRows))
}

func ConnectToDbSql() *sql.DB {
	cfg := mysql.Config{
		User:                 os.Getenv("POLYGONPULSE_DBUSER"),
		Passwd:               os.Getenv("POLYGONPULSE_DBPASSWORD"),
		Net:                  "tcp",
		Addr:                 os.Getenv("POLYGONPULSE_DBADDR"),
		DBName:               os.Getenv("POLYGONPULSE_DBNAME"),
		AllowNativePasswords: true,
		ParseTime:            true,
	}

	db, err := sql.Open("mysql", cfg.FormatDSN())
	Check(err)
	err = db.Ping()
	Check(err)
	return db
}

func Check(e error) {
	if e != nil {
		panic(e)
	}
}

type dbRow struct {
	uploadMoment   time.Time
	user           string
	releaseVersion int64
	sessionVersion int64
	id             uuid.UUID
	session        []byte
	gif            []byte
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}

func MakeDir(name string) {
	err := os.MkdirAll(name, 0755)
	Check(err)
}
