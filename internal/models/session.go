package models

// Session is the cosmetic identity marker carried by a cookie. It is not an
// authentication boundary: nothing is verified and nothing is stored server side.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user,omitempty"`
}

func NewSession(user string) *Session {
	if user == "" {
		return &Session{}
	}
	return &Session{Authenticated: true, User: user}
}
