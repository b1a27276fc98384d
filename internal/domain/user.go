package domain

// User is a static account entry. Passwords are plaintext because the
// whole account table is demo data; there is no real identity provider.
type User struct {
	Username string
	Password string
	Role     Role
	Name     string
}
