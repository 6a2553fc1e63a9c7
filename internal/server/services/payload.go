package services

// Request body keys.
const (
	KeyUsername    = "username"
	KeyPassword    = "password"
	KeyNewUsername = "new_username"
	KeyNewPassword = "new_password"
)

// Payload is a decoded request body. Key presence is significant: an absent
// key and an empty value are different things.
type Payload map[string]string

func (p Payload) pair(a, b string) (string, string, bool) {
	va, okA := p[a]
	vb, okB := p[b]
	return va, vb, okA && okB
}

// Credentials returns the requester's username and password and whether
// both keys are present.
func (p Payload) Credentials() (username, password string, ok bool) {
	return p.pair(KeyUsername, KeyPassword)
}

// NewUser returns the account to register and whether both keys are present.
func (p Payload) NewUser() (username, password string, ok bool) {
	return p.pair(KeyNewUsername, KeyNewPassword)
}
