package domain

// Session is the client-side view of a login. Token and User are stored
// independently and either may be missing.
type Session struct {
	Token string
	User  *User
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
