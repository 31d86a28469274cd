package admins

// Admin is one row of the admin_users table. The password hash is an
// unsalted sha256 hex digest, kept for compatibility with already stored
// credentials. CreatedAt is an RFC3339 string, as stored.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    string
}
