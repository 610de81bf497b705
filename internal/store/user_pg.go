package store

import (
	"context"
	"errors"

	"musicapi/internal/entity"
	"musicapi/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserPG struct {
	db *pgxpool.Pool
}

func NewUserPG(db *pgxpool.Pool) *UserPG {
	return &UserPG{db: db}
}

func (r *UserPG) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	const query = `
	SELECT email, user_name, password, subscribed_songs
	FROM users
	WHERE email = $1
	LIMIT 1
	`
	var user entity.User
	err := r.db.QueryRow(ctx, query, email).Scan(&user.Email, &user.UserName, &user.Password, &user.SubscribedSongs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.ErrNotFound
		}
		return entity.User{}, err
	}
	if user.SubscribedSongs == nil {
		user.SubscribedSongs = []string{}
	}
	return user, nil
}

func (r *UserPG) Put(ctx context.Context, u *entity.User) error {
	const query = `
	INSERT INTO users (email, user_name, password, subscribed_songs)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (email)
	DO UPDATE SET user_name = EXCLUDED.user_name, password = EXCLUDED.password, subscribed_songs = EXCLUDED.subscribed_songs
	`
	songs := u.SubscribedSongs
	if songs == nil {
		songs = []string{}
	}
	_, err := r.db.Exec(ctx, query, u.Email, u.UserName, u.Password, songs)
	return err
}

func (r *UserPG) UpdateSubscribedSongs(ctx context.Context, email string, songs []string) error {
	const query = `
	UPDATE users SET subscribed_songs = $2 WHERE email = $1
	`
	if songs == nil {
		songs = []string{}
	}
	tag, err := r.db.Exec(ctx, query, email, songs)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
