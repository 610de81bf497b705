package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"musicapi/internal/entity"
	"musicapi/internal/usecase"
)

// HomeHandler multiplexes the /home endpoint: POST is either a catalog
// search or a profile fetch depending on which keys the body carries, PATCH
// mutates the caller's subscription list.
type HomeHandler struct {
	users usecase.UserStore
	songs usecase.SongStore
}

func NewHomeHandler(users usecase.UserStore, songs usecase.SongStore) *HomeHandler {
	return &HomeHandler{users: users, songs: songs}
}

// yearValue accepts the year both as a JSON number and as the quoted string
// the search form submits. An empty string means the field was left blank.
type yearValue int

func (y *yearValue) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*y = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*y = yearValue(n)
	return nil
}

// homePostReq uses pointer fields so that a key that is present but empty
// (the form submits every field) is distinguishable from an absent one.
// Presence of any search key routes the request to the search path.
type homePostReq struct {
	Email  string     `json:"email"`
	Title  *string    `json:"title"`
	Artist *string    `json:"artist"`
	Year   *yearValue `json:"year"`
}

func (h *HomeHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req homePostReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if req.Title != nil || req.Artist != nil || req.Year != nil {
		h.search(w, r, req)
		return
	}
	h.profile(w, r, req.Email)
}

func (h *HomeHandler) search(w http.ResponseWriter, r *http.Request, req homePostReq) {
	if req.Email == "" {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Email is required for search.", nil)
		return
	}

	var filter usecase.SongFilter
	if req.Title != nil {
		filter.Title = *req.Title
	}
	if req.Artist != nil {
		filter.Artist = *req.Artist
	}
	if req.Year != nil {
		filter.Year = int(*req.Year)
	}
	if filter.Empty() {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Please provide at least one of the following attributes: title, artist, or year.", nil)
		return
	}

	songs, err := h.songs.Scan(r.Context(), filter)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	// An unknown caller just gets an empty exclusion set; only the
	// subscription path insists on a valid user.
	subscribed := map[string]bool{}
	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil && !errors.Is(err, usecase.ErrNotFound) {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	for _, id := range user.SubscribedSongs {
		subscribed[id] = true
	}

	var results []entity.Song
	for _, song := range songs {
		if !subscribed[entity.SongID(song.Title, song.Artist)] {
			results = append(results, song)
		}
	}

	if len(results) == 0 {
		JSONError(w, http.StatusNotFound, "NOT_FOUND", "No search results found.", nil)
		return
	}
	JSONSuccess(w, results)
}

func (h *HomeHandler) profile(w http.ResponseWriter, r *http.Request, email string) {
	if email == "" {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Email is required.", nil)
		return
	}

	user, err := h.users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "User not found.", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	songs, err := h.listSubscribedSongs(r, user)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, map[string]any{
		"user_name":        user.UserName,
		"subscribed_songs": songs,
	})
}

// listSubscribedSongs resolves each stored identifier back to a catalog
// song. Identifiers that do not split cleanly or no longer resolve to a
// stored song are skipped; the subscription list enforces no referential
// integrity.
func (h *HomeHandler) listSubscribedSongs(r *http.Request, user entity.User) ([]entity.Song, error) {
	songs := []entity.Song{}
	for _, id := range user.SubscribedSongs {
		title, artist, ok := entity.SplitSongID(id)
		if !ok {
			continue
		}
		song, err := h.songs.GetByTitleArtist(r.Context(), title, artist)
		if err != nil {
			if errors.Is(err, usecase.ErrNotFound) {
				continue
			}
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, nil
}

type subscriptionReq struct {
	Email    string `json:"email" validate:"required"`
	SongName string `json:"song_name" validate:"required"`
	Action   string `json:"action"`
}

// Patch handles subscribe and unsubscribe. Both actions are idempotent: a
// duplicate subscribe or an unsubscribe of an absent entry skips the write
// and still reports success. The success message is the same for both
// actions; that is the published contract.
func (h *HomeHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req subscriptionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if req.Action != "subscribe" && req.Action != "unsubscribe" {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid action.", nil)
		return
	}

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Bad Request: Missing username or song name.", details)
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			// Reported as a client error, not a 404; clients match on this.
			JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Bad Request: User not found.", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	var updated []string
	changed := false
	switch req.Action {
	case "subscribe":
		if !user.Subscribed(req.SongName) {
			updated = append(user.SubscribedSongs, req.SongName)
			changed = true
		}
	case "unsubscribe":
		// Only the first occurrence goes; duplicates can only exist if
		// they were inserted out-of-band.
		for i, id := range user.SubscribedSongs {
			if id == req.SongName {
				updated = append(user.SubscribedSongs[:i:i], user.SubscribedSongs[i+1:]...)
				changed = true
				break
			}
		}
	}

	if changed {
		if err := h.users.UpdateSubscribedSongs(r.Context(), user.Email, updated); err != nil {
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
			return
		}
	}

	JSONMessage(w, "Song added successfully.")
}
