package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"musicapi/internal/entity"
	"musicapi/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SongPG struct {
	db *pgxpool.Pool
}

func NewSongPG(db *pgxpool.Pool) *SongPG {
	return &SongPG{db: db}
}

func (r *SongPG) GetByTitleArtist(ctx context.Context, title, artist string) (entity.Song, error) {
	const query = `
	SELECT title, artist, year::int, web_url, img_url
	FROM songs
	WHERE title = $1 AND artist = $2
	LIMIT 1
	`
	var song entity.Song
	err := r.db.QueryRow(ctx, query, title, artist).Scan(&song.Title, &song.Artist, &song.Year, &song.WebURL, &song.ImgURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Song{}, usecase.ErrNotFound
		}
		return entity.Song{}, err
	}
	return song, nil
}

// buildScanQuery accumulates one clause per supplied attribute and joins
// them with AND. Title and artist are case-sensitive substring matches;
// year is equality against the NUMERIC column.
func buildScanQuery(f usecase.SongFilter) (string, []any) {
	query := `
	SELECT title, artist, year::int, web_url, img_url
	FROM songs`

	var clauses []string
	var args []any
	if f.Title != "" {
		args = append(args, f.Title)
		clauses = append(clauses, fmt.Sprintf("position($%d in title) > 0", len(args)))
	}
	if f.Artist != "" {
		args = append(args, f.Artist)
		clauses = append(clauses, fmt.Sprintf("position($%d in artist) > 0", len(args)))
	}
	if f.Year != 0 {
		args = append(args, f.Year)
		clauses = append(clauses, fmt.Sprintf("year = $%d", len(args)))
	}
	if len(clauses) > 0 {
		query += "\n\tWHERE " + strings.Join(clauses, " AND ")
	}
	return query, args
}

func (r *SongPG) Scan(ctx context.Context, f usecase.SongFilter) ([]entity.Song, error) {
	query, args := buildScanQuery(f)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []entity.Song
	for rows.Next() {
		var s entity.Song
		if err := rows.Scan(&s.Title, &s.Artist, &s.Year, &s.WebURL, &s.ImgURL); err != nil {
			return nil, err
		}
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return songs, nil
}
