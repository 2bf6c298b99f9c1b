package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// Connect opens the shared Postgres pool and verifies it with a ping.
// Startup is not worth continuing without a database, so failures are
// fatal here.
func Connect(dsn string) *sql.DB {
	if dsn == "" {
		log.Println("[DB] warning: DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("[DB] open failed:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("[DB] ping failed:", err)
	}

	// Keep the pool small, connections short-lived.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetConnMaxIdleTime(30 * time.Second)

	log.Println("[DB] PostgreSQL connection established")
	return db
}
