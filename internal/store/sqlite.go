package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Create table
	query := `
	CREATE TABLE IF NOT EXISTS evals (
		key TEXT PRIMARY KEY,
		result TEXT,
		updated_at DATETIME
	);
	`
	if _, err := db.Exec(query); err != nil {
		return nil, fmt.Errorf("failed to init db: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(key string, res *Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO evals (key, result, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET result=excluded.result, updated_at=excluded.updated_at;
	`
	_, err = s.db.Exec(query, key, string(data), time.Now())
	return err
}

func (s *SQLiteStore) Load(key string) (*Result, error) {
	var data string
	err := s.db.QueryRow("SELECT result FROM evals WHERE key = ?", key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}

	var res Result
	if err := json.Unmarshal([]byte(data), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
