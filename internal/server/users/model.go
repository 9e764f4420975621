package users

// User is the stored account row. PasswordHash never leaves this package.
type User struct {
	ID           int64
	CollegeID    string
	Email        string
	PasswordHash string
	IsAdmin      bool
}

// Public is the projection of a user that is safe to return to clients and
// to embed in session tokens.
type Public struct {
	ID        int64  `json:"id"`
	CollegeID string `json:"college_id"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

// AsPublic strips the password hash from a stored user.
func (u *User) AsPublic() Public {
	return Public{
		ID:        u.ID,
		CollegeID: u.CollegeID,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
	}
}
