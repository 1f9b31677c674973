package model

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	JTI      string `json:"jti"`
}

// IsAnonymous reports whether no user is attached.
func (s Scope) IsAnonymous() bool {
	return s.UserID == ""
}
