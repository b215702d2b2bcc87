package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS favorites (
	id           INTEGER PRIMARY KEY,
	title        VARCHAR NOT NULL,
	artist_title VARCHAR,
	image_id     VARCHAR,
	latitude     DOUBLE,
	longitude    DOUBLE,
	description  VARCHAR,
	added_at     TIMESTAMP DEFAULT current_timestamp
)`

func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Repository persists favorite artworks so they survive restarts.
type Repository struct {
	db *sql.DB
}

func NewDuckDBRepository(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) SaveFavorite(a *Artwork) error {
	_, err := r.db.Exec(`
		INSERT INTO favorites (id, title, artist_title, image_id, latitude, longitude, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
		a.ID, a.Title, a.ArtistTitle, a.ImageID, nullFloat(a.Latitude), nullFloat(a.Longitude), a.Description,
	)
	return err
}

// nullFloat converts an optional coordinate into something the driver can bind.
func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func (r *Repository) DeleteFavorite(id int) error {
	_, err := r.db.Exec(`DELETE FROM favorites WHERE id = ?`, id)
	return err
}

// ListFavorites returns the stored favorites, oldest first.
func (r *Repository) ListFavorites() ([]*Artwork, error) {
	rows, err := r.db.Query(`
		SELECT id, title, artist_title, image_id, latitude, longitude, description
		FROM favorites
		ORDER BY added_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Artwork
	for rows.Next() {
		var (
			a                     Artwork
			artist, imageID, desc sql.NullString
			lat, lon              sql.NullFloat64
		)
		if err := rows.Scan(&a.ID, &a.Title, &artist, &imageID, &lat, &lon, &desc); err != nil {
			return nil, err
		}
		a.ArtistTitle = artist.String
		a.ImageID = imageID.String
		a.Description = desc.String
		if lat.Valid {
			v := lat.Float64
			a.Latitude = &v
		}
		if lon.Valid {
			v := lon.Float64
			a.Longitude = &v
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
