package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Photo is one entry in the photo library.
type Photo struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	Title     string    `json:"title"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

// PhotoRepo provides CRUD operations for the photo library.
type PhotoRepo struct {
	db *sql.DB
}

// Photos returns the photo repository.
func (s *Store) Photos() *PhotoRepo {
	return &PhotoRepo{db: s.db}
}

// Add inserts a photo at the end of the display order and returns it
// with a fresh identity.
func (r *PhotoRepo) Add(fileName, title string) (*Photo, error) {
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}

	var maxOrder sql.NullInt64
	if err := r.db.QueryRow(`SELECT MAX(sort_order) FROM photos`).Scan(&maxOrder); err != nil {
		return nil, fmt.Errorf("read sort order: %w", err)
	}

	p := &Photo{
		ID:        uuid.NewString(),
		FileName:  fileName,
		Title:     title,
		SortOrder: int(maxOrder.Int64) + 1,
		CreatedAt: time.Now(),
	}

	_, err := r.db.Exec(
		`INSERT INTO photos (id, file_name, title, sort_order, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.FileName, p.Title, p.SortOrder, p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert photo: %w", err)
	}

	return p, nil
}

// Get returns one photo by ID, or nil if it does not exist.
func (r *PhotoRepo) Get(id string) (*Photo, error) {
	row := r.db.QueryRow(
		`SELECT id, file_name, title, sort_order, created_at FROM photos WHERE id = ?`, id,
	)

	var p Photo
	err := row.Scan(&p.ID, &p.FileName, &p.Title, &p.SortOrder, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}

	return &p, nil
}

// List returns all photos in display order.
func (r *PhotoRepo) List() ([]Photo, error) {
	rows, err := r.db.Query(
		`SELECT id, file_name, title, sort_order, created_at FROM photos ORDER BY sort_order, created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	var photos []Photo
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.FileName, &p.Title, &p.SortOrder, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}

	return photos, rows.Err()
}

// Remove deletes a photo by ID. Reports whether a row was deleted.
func (r *PhotoRepo) Remove(id string) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM photos WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete photo: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
