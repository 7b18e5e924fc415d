package domain

// UserRole distinguishes regular users from administrators.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User represents an authenticated owner of transactions and budgets.
type User struct {
	UserID       string   `json:"userID"` // Primary key (UUID)
	Email        string   `json:"email"`  // Unique
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"` // bcrypt hash, never serialized
	AuditFields
}

// GoogleUserInfo is the subset of the Google ID token payload the
// application cares about.
type GoogleUserInfo struct {
	Subject    string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}
