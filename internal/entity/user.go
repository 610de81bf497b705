package entity

type User struct {
	Email           string   `json:"email"`
	UserName        string   `json:"user_name"`
	Password        string   `json:"-"`
	SubscribedSongs []string `json:"subscribed_songs"`
}

// Subscribed reports whether the user's list already holds the identifier.
func (u User) Subscribed(songID string) bool {
	for _, id := range u.SubscribedSongs {
		if id == songID {
			return true
		}
	}
	return false
}
