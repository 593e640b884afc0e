package entity

// User is a credential record. Password holds a bcrypt hash, never the
// plaintext.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}
