//go:build db_enabled

package main

import (
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
)

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

// UploadRecording stores a session, and the GIF exported from it, in the
// recordings table. Uploading the same session again replaces the previous
// upload.
func UploadRecording(user string, s *Session, sessionData []byte,
	gifData []byte) {
	db := ConnectToDbSql()
	defer func(db *sql.DB) { Check(db.Close()) }(db)

	_, err := db.Exec("REPLACE INTO recordings "+
		"(id, user, upload_moment, release_version, session_version, "+
		"session, gif) VALUES (?, ?, ?, ?, ?, ?, ?)",
		s.Id.String(), user, time.Now(), s.ReleaseVersion, s.SessionVersion,
		sessionData, gifData)
	Check(err)
	slog.Info("uploaded recording", "id", s.Id, "user", user,
		"bytes", len(sessionData)+len(gifData))
}
