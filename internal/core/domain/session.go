package domain

// Session is the request-scoped view of who is signed in.
//
// While Loading is true the user is indeterminate and no access decision may
// be taken from it. Once Loading is false, a nil User means anonymous.
type Session struct {
	User    *User
	Loading bool
}

// Authenticated reports whether the session is resolved and carries a user.
func (s Session) Authenticated() bool {
	return !s.Loading && s.User != nil
}
