package domain

// Session is the server-held state binding a browser session to a user.
// The browser only ever sees a signed token referencing the session ID,
// so deleting the server-side record invalidates the token immediately.
type Session struct {
	ID       string
	UserID   string
	Username string
}
