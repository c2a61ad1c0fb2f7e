package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATE/DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the application tables when they do not exist yet. The
// statements are idempotent so the server can run them on every startup.
// Schema follows the strict variant: typed DATE columns, a unique key on
// (boarder_id, meal_date) and cascading foreign keys.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS boarders (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			name VARCHAR(100) NOT NULL,
			room_no VARCHAR(16) NOT NULL,
			username VARCHAR(50) NOT NULL,
			pin_hash VARCHAR(100) NOT NULL,
			is_convenor TINYINT(1) NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_boarders_username (username),
			KEY idx_boarders_room (room_no)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS meal_bookings (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			boarder_id BIGINT UNSIGNED NOT NULL,
			meal_date DATE NOT NULL,
			lunch TINYINT(1) NOT NULL DEFAULT 0,
			dinner TINYINT(1) NOT NULL DEFAULT 0,
			dinner_choice VARCHAR(16) NULL,
			PRIMARY KEY (id),
			UNIQUE KEY uq_meal_bookings_boarder_date (boarder_id, meal_date),
			CONSTRAINT fk_meal_bookings_boarder FOREIGN KEY (boarder_id)
				REFERENCES boarders (id) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS dinner_options (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			meal_date DATE NOT NULL,
			choice VARCHAR(16) NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY uq_dinner_options_date (meal_date)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS notices (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			notice TEXT NOT NULL,
			posted_by VARCHAR(50) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			KEY idx_notices_created (created_at),
			CONSTRAINT fk_notices_poster FOREIGN KEY (posted_by)
				REFERENCES boarders (username) ON DELETE CASCADE
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
