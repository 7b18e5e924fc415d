package models

// User represents a user of the application. PasswordHash is empty for
// accounts provisioned through Google sign-in.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Role         string `db:"role"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}
