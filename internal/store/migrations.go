package store

// runMigrations executes all database migrations. Statements are
// idempotent so the full list runs on every startup.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Photos table - the displayable photo library
		`CREATE TABLE IF NOT EXISTS photos (
			id TEXT PRIMARY KEY,
			file_name TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_photos_sort_order ON photos(sort_order)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
