package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"musicapi/internal/entity"
	"musicapi/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = []entity.Song{
	{Title: "Love Story", Artist: "Taylor Swift", Year: 2008, WebURL: "https://example.com/ls", ImgURL: "https://example.com/ls.jpg"},
	{Title: "Hate", Artist: "X", Year: 2000, WebURL: "https://example.com/h", ImgURL: "https://example.com/h.jpg"},
	{Title: "Lover", Artist: "Taylor Swift", Year: 2019, WebURL: "https://example.com/lv", ImgURL: "https://example.com/lv.jpg"},
}

func newHomeHandler(users ...entity.User) (*HomeHandler, *testutil.FakeUserStore, *testutil.FakeSongStore) {
	userStore := testutil.NewFakeUserStore(users...)
	songStore := testutil.NewFakeSongStore(testCatalog...)
	return NewHomeHandler(userStore, songStore), userStore, songStore
}

func searchResults(t *testing.T, body map[string]interface{}) []interface{} {
	t.Helper()
	data, ok := body["data"].([]interface{})
	require.True(t, ok, "expected a data array, got %v", body)
	return data
}

func TestHomeHandler_Search(t *testing.T) {
	caller := entity.User{Email: "u@x.com", UserName: "U", Password: "pw"}

	tests := []struct {
		name            string
		body            map[string]interface{}
		subscribed      []string
		expectedStatus  int
		expectedTitles  []string
		expectedMessage string
	}{
		{
			name:           "title contains match",
			body:           map[string]interface{}{"email": "u@x.com", "title": "Love", "artist": "", "year": ""},
			expectedStatus: http.StatusOK,
			expectedTitles: []string{"Love Story", "Lover"},
		},
		{
			name:           "filters combine with AND",
			body:           map[string]interface{}{"email": "u@x.com", "title": "Love", "artist": "Taylor", "year": "2008"},
			expectedStatus: http.StatusOK,
			expectedTitles: []string{"Love Story"},
		},
		{
			name:           "year accepted as number too",
			body:           map[string]interface{}{"email": "u@x.com", "year": 2000},
			expectedStatus: http.StatusOK,
			expectedTitles: []string{"Hate"},
		},
		{
			name:           "contains is case-sensitive",
			body:           map[string]interface{}{"email": "u@x.com", "title": "love"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "subscribed songs are excluded",
			body:           map[string]interface{}{"email": "u@x.com", "title": "Love"},
			subscribed:     []string{"Love Story-Taylor Swift"},
			expectedStatus: http.StatusOK,
			expectedTitles: []string{"Lover"},
		},
		{
			name:            "all results subscribed yields not found",
			body:            map[string]interface{}{"email": "u@x.com", "title": "Love"},
			subscribed:      []string{"Love Story-Taylor Swift", "Lover-Taylor Swift"},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "No search results found.",
		},
		{
			name:            "missing email",
			body:            map[string]interface{}{"title": "Love"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Email is required for search.",
		},
		{
			name:            "all filters empty",
			body:            map[string]interface{}{"email": "u@x.com", "title": "", "artist": "", "year": ""},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Please provide at least one of the following attributes: title, artist, or year.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := caller
			user.SubscribedSongs = tt.subscribed
			handler, _, _ := newHomeHandler(user)

			w := httptest.NewRecorder()
			handler.Post(w, testutil.NewRequest(http.MethodPost, "/home", tt.body))

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, tt.expectedStatus, resp.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, testutil.ErrorMessage(resp.Body))
			}
			if tt.expectedStatus == http.StatusOK {
				results := searchResults(t, resp.Body)
				var titles []string
				for _, item := range results {
					song := item.(map[string]interface{})
					titles = append(titles, song["title"].(string))
				}
				assert.ElementsMatch(t, tt.expectedTitles, titles)
			}
		})
	}
}

// A caller the login table has never seen still gets search results; only
// the subscription path requires a valid user.
func TestHomeHandler_SearchUnknownCaller(t *testing.T) {
	handler, _, _ := newHomeHandler()

	w := httptest.NewRecorder()
	handler.Post(w, testutil.NewRequest(http.MethodPost, "/home", map[string]interface{}{"email": "ghost@x.com", "title": "Love"}))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, searchResults(t, resp.Body), 2)
}

func TestHomeHandler_SearchYearCoercedToInt(t *testing.T) {
	handler, _, _ := newHomeHandler(entity.User{Email: "u@x.com"})

	w := httptest.NewRecorder()
	handler.Post(w, testutil.NewRequest(http.MethodPost, "/home", map[string]interface{}{"email": "u@x.com", "title": "Hate"}))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	song := searchResults(t, resp.Body)[0].(map[string]interface{})
	assert.Equal(t, float64(2000), song["year"])
}

func TestHomeHandler_Profile(t *testing.T) {
	user := entity.User{
		Email:    "u@x.com",
		UserName: "U",
		SubscribedSongs: []string{
			"Love Story-Taylor Swift",
			"Gone-Nobody",     // no longer resolves to a catalog song
			"TooManyDashes--", // does not split into two parts
		},
	}
	handler, _, _ := newHomeHandler(user)

	w := httptest.NewRecorder()
	handler.Post(w, testutil.NewRequest(http.MethodPost, "/home", map[string]interface{}{"email": "u@x.com"}))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)

	data := resp.Body["data"].(map[string]interface{})
	assert.Equal(t, "U", data["user_name"])
	songs := data["subscribed_songs"].([]interface{})
	require.Len(t, songs, 1)
	assert.Equal(t, "Love Story", songs[0].(map[string]interface{})["title"])
}

func TestHomeHandler_ProfileErrors(t *testing.T) {
	handler, userStore, _ := newHomeHandler()

	t.Run("missing email", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Post(w, testutil.NewRequest(http.MethodPost, "/home", map[string]interface{}{}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Post(w, testutil.NewRequest(http.MethodPost, "/home", map[string]interface{}{"email": "ghost@x.com"}))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store failure surfaces as 500", func(t *testing.T) {
		userStore.Err = assert.AnError
		defer func() { userStore.Err = nil }()
		w := httptest.NewRecorder()
		handler.Post(w, testutil.NewRequest(http.MethodPost, "/home", map[string]interface{}{"email": "u@x.com"}))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHomeHandler_Subscribe(t *testing.T) {
	user := entity.User{Email: "u@x.com", UserName: "U", SubscribedSongs: []string{}}

	t.Run("subscribe adds the identifier", func(t *testing.T) {
		handler, userStore, _ := newHomeHandler(user)
		w := httptest.NewRecorder()
		handler.Patch(w, testutil.NewRequest(http.MethodPatch, "/home", map[string]string{
			"email": "u@x.com", "song_name": "Love Story-Taylor Swift", "action": "subscribe",
		}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "Song added successfully.", resp.Body["message"])
		assert.Equal(t, []string{"Love Story-Taylor Swift"}, userStore.Users["u@x.com"].SubscribedSongs)
	})

	t.Run("subscribing twice keeps one entry", func(t *testing.T) {
		handler, userStore, _ := newHomeHandler(user)
		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			handler.Patch(w, testutil.NewRequest(http.MethodPatch, "/home", map[string]string{
				"email": "u@x.com", "song_name": "Love Story-Taylor Swift", "action": "subscribe",
			}))
			assert.Equal(t, http.StatusOK, w.Code)
		}
		assert.Equal(t, []string{"Love Story-Taylor Swift"}, userStore.Users["u@x.com"].SubscribedSongs)
	})

	t.Run("unsubscribe removes the identifier", func(t *testing.T) {
		subscribed := user
		subscribed.SubscribedSongs = []string{"Love Story-Taylor Swift", "Hate-X"}
		handler, userStore, _ := newHomeHandler(subscribed)

		w := httptest.NewRecorder()
		handler.Patch(w, testutil.NewRequest(http.MethodPatch, "/home", map[string]string{
			"email": "u@x.com", "song_name": "Love Story-Taylor Swift", "action": "unsubscribe",
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"Hate-X"}, userStore.Users["u@x.com"].SubscribedSongs)
	})

	t.Run("unsubscribing an absent entry is a no-op success", func(t *testing.T) {
		subscribed := user
		subscribed.SubscribedSongs = []string{"Hate-X"}
		handler, userStore, _ := newHomeHandler(subscribed)

		w := httptest.NewRecorder()
		handler.Patch(w, testutil.NewRequest(http.MethodPatch, "/home", map[string]string{
			"email": "u@x.com", "song_name": "Love Story-Taylor Swift", "action": "unsubscribe",
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"Hate-X"}, userStore.Users["u@x.com"].SubscribedSongs)
	})

	t.Run("missing song name", func(t *testing.T) {
		handler, _, _ := newHomeHandler(user)
		w := httptest.NewRecorder()
		handler.Patch(w, testutil.NewRequest(http.MethodPatch, "/home", map[string]string{
			"email": "u@x.com", "action": "subscribe",
		}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Bad Request: Missing username or song name.", testutil.ErrorMessage(resp.Body))
	})

	t.Run("unknown user is a client error, not a 404", func(t *testing.T) {
		handler, _, _ := newHomeHandler()
		w := httptest.NewRecorder()
		handler.Patch(w, testutil.NewRequest(http.MethodPatch, "/home", map[string]string{
			"email": "ghost@x.com", "song_name": "Love Story-Taylor Swift", "action": "subscribe",
		}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Bad Request: User not found.", testutil.ErrorMessage(resp.Body))
	})

	t.Run("unknown action", func(t *testing.T) {
		handler, _, _ := newHomeHandler(user)
		w := httptest.NewRecorder()
		handler.Patch(w, testutil.NewRequest(http.MethodPatch, "/home", map[string]string{
			"email": "u@x.com", "song_name": "Love Story-Taylor Swift", "action": "resubscribe",
		}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Round-trip: after subscribing, the profile's subscribed_songs carries the
// full song record for the identifier.
func TestHomeHandler_SubscribeThenProfileRoundTrip(t *testing.T) {
	handler, _, _ := newHomeHandler(entity.User{Email: "u@x.com", UserName: "U", SubscribedSongs: []string{}})

	w := httptest.NewRecorder()
	handler.Patch(w, testutil.NewRequest(http.MethodPatch, "/home", map[string]string{
		"email": "u@x.com", "song_name": "Love Story-Taylor Swift", "action": "subscribe",
	}))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.Post(w, testutil.NewRequest(http.MethodPost, "/home", map[string]interface{}{"email": "u@x.com"}))
	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)

	data := resp.Body["data"].(map[string]interface{})
	songs := data["subscribed_songs"].([]interface{})
	require.Len(t, songs, 1)
	song := songs[0].(map[string]interface{})
	assert.Equal(t, "Love Story", song["title"])
	assert.Equal(t, "Taylor Swift", song["artist"])
	assert.Equal(t, float64(2008), song["year"])
}

// An absent or undecodable body fails up front; the body is parsed exactly
// once before any branching.
func TestHomeHandler_PostInvalidBody(t *testing.T) {
	handler, _, _ := newHomeHandler()

	w := httptest.NewRecorder()
	handler.Post(w, testutil.NewRequest(http.MethodPost, "/home", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	handler.Post(w, testutil.NewRequest(http.MethodPost, "/home", "{not json"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMethodMux_RejectsOtherMethods(t *testing.T) {
	handler, _, _ := newHomeHandler()
	mux := MethodMux(map[string]http.HandlerFunc{
		http.MethodPost:  handler.Post,
		http.MethodPatch: handler.Patch,
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.NewRequest(http.MethodDelete, "/home", nil))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
	assert.Equal(t, "Invalid HTTP method.", testutil.ErrorMessage(resp.Body))
}
