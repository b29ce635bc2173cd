package entities

import "time"

// Credentials are the sign-in payload. Captcha defaults to a fixed sentinel
// the server accepts for password logins.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Captcha  string `json:"captcha"`
}

func (c Credentials) IsNotBlank() bool {
	return c.Email != "" && c.Password != ""
}

// Session is the authenticated connection state: an opaque bearer token plus
// the cookie strings accumulated from Set-Cookie responses. Cookies only ever
// grow; nothing here parses or expires them.
type Session struct {
	Token   string   `json:"token"`
	Cookies []string `json:"cookies"`
}

// DateRange is a user-picked reservation window. A nil End means the range
// covers just the start's day.
type DateRange struct {
	Start time.Time
	End   *time.Time
}
