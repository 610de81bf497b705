package entity

import "strings"

type Song struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Year   int    `json:"year"`
	WebURL string `json:"web_url"`
	ImgURL string `json:"img_url"`
}

// SongID builds the "{title}-{artist}" identifier used as the
// subscription-list element. The form is ambiguous when a title itself
// contains a dash; stored subscriptions depend on this exact string, so it
// stays as-is.
func SongID(title, artist string) string {
	return title + "-" + artist
}

// SplitSongID splits an identifier back into (title, artist). Identifiers
// that do not split into exactly two parts are rejected; callers drop them.
func SplitSongID(id string) (title, artist string, ok bool) {
	parts := strings.Split(id, "-")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
