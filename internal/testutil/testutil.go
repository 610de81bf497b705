package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"musicapi/internal/entity"
	"musicapi/internal/usecase"
)

// TestUser is a mock user for testing
var TestUser = entity.User{
	Email:           "test@example.com",
	UserName:        "testuser",
	Password:        "password123",
	SubscribedSongs: []string{},
}

// TestSong is a mock song for testing
var TestSong = entity.Song{
	Title:  "Love Story",
	Artist: "Taylor Swift",
	Year:   2008,
	WebURL: "https://example.com/love-story",
	ImgURL: "https://example.com/love-story.jpg",
}

// FakeUserStore is an in-memory UserStore keyed by email.
type FakeUserStore struct {
	Users map[string]entity.User
	// Err, when set, is returned from every call to simulate a store fault.
	Err error
}

func NewFakeUserStore(users ...entity.User) *FakeUserStore {
	s := &FakeUserStore{Users: make(map[string]entity.User)}
	for _, u := range users {
		s.Users[u.Email] = u
	}
	return s
}

func (s *FakeUserStore) GetByEmail(_ context.Context, email string) (entity.User, error) {
	if s.Err != nil {
		return entity.User{}, s.Err
	}
	u, ok := s.Users[email]
	if !ok {
		return entity.User{}, usecase.ErrNotFound
	}
	return u, nil
}

func (s *FakeUserStore) Put(_ context.Context, u *entity.User) error {
	if s.Err != nil {
		return s.Err
	}
	s.Users[u.Email] = *u
	return nil
}

func (s *FakeUserStore) UpdateSubscribedSongs(_ context.Context, email string, songs []string) error {
	if s.Err != nil {
		return s.Err
	}
	u, ok := s.Users[email]
	if !ok {
		return usecase.ErrNotFound
	}
	u.SubscribedSongs = songs
	s.Users[email] = u
	return nil
}

// FakeSongStore is an in-memory SongStore whose Scan mirrors the store's
// filter semantics: case-sensitive contains on title/artist, equality on
// year, clauses combined with AND.
type FakeSongStore struct {
	Songs []entity.Song
	Err   error
}

func NewFakeSongStore(songs ...entity.Song) *FakeSongStore {
	return &FakeSongStore{Songs: songs}
}

func (s *FakeSongStore) GetByTitleArtist(_ context.Context, title, artist string) (entity.Song, error) {
	if s.Err != nil {
		return entity.Song{}, s.Err
	}
	for _, song := range s.Songs {
		if song.Title == title && song.Artist == artist {
			return song, nil
		}
	}
	return entity.Song{}, usecase.ErrNotFound
}

func (s *FakeSongStore) Scan(_ context.Context, f usecase.SongFilter) ([]entity.Song, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []entity.Song
	for _, song := range s.Songs {
		if f.Title != "" && !strings.Contains(song.Title, f.Title) {
			continue
		}
		if f.Artist != "" && !strings.Contains(song.Artist, f.Artist) {
			continue
		}
		if f.Year != 0 && song.Year != f.Year {
			continue
		}
		out = append(out, song)
	}
	return out, nil
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		if raw, ok := body.(string); ok {
			bodyBytes = []byte(raw)
		} else {
			bodyBytes, _ = json.Marshal(body)
		}
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// ErrorMessage pulls the error message out of a recorded envelope body.
func ErrorMessage(body map[string]interface{}) string {
	errObj, ok := body["error"].(map[string]interface{})
	if !ok {
		return ""
	}
	msg, _ := errObj["message"].(string)
	return msg
}
