package models

// Identity is the locally derived view of the signed-in user.
// The backend stays authoritative; this is only a mirror.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Valid reports whether both ID and Username are set.
func (i Identity) Valid() bool {
	return i.ID != "" && i.Username != ""
}

// StoredIdentity is the shape found under the cached identity keys.
// Older clients wrote the id as "userId".
type StoredIdentity struct {
	ID       string `json:"id,omitempty"`
	UserID   string `json:"userId,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Normalize converts the stored record to an Identity, preferring "id" over "userId".
func (s StoredIdentity) Normalize() Identity {
	id := s.ID
	if id == "" {
		id = s.UserID
	}
	return Identity{ID: id, Username: s.Username, Email: s.Email}
}
