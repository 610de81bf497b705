package usecase

import (
	"context"
	"errors"

	"musicapi/internal/entity"
)

var ErrNotFound = errors.New("not found")

// UserStore is the login-table collaborator. Put is a full upsert; callers
// check pre-existence themselves. UpdateSubscribedSongs overwrites the whole
// list (no atomic append; a concurrent lost update is an accepted limitation
// at this scale).
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	Put(ctx context.Context, u *entity.User) error
	UpdateSubscribedSongs(ctx context.Context, email string, songs []string) error
}

// SongFilter holds the optional search attributes. Zero values contribute no
// clause; title and artist are case-sensitive contains matches, year is an
// exact match.
type SongFilter struct {
	Title  string
	Artist string
	Year   int
}

func (f SongFilter) Empty() bool {
	return f.Title == "" && f.Artist == "" && f.Year == 0
}

// SongStore is the music-table collaborator. Scan walks the full catalog
// with the filter applied; the catalog is small enough that no index is
// involved.
type SongStore interface {
	GetByTitleArtist(ctx context.Context, title, artist string) (entity.Song, error)
	Scan(ctx context.Context, f SongFilter) ([]entity.Song, error)
}
