package model

import "golang.org/x/crypto/bcrypt"

// User represents an authenticated user in the system
type User struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	PasswordHash *string `json:"password_hash"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hash := string(hashedPassword)
	u.PasswordHash = &hash
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash.
// Users without a stored hash never verify.
func (u *User) CheckPassword(password string) bool {
	if u.PasswordHash == nil {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without the password hash)
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
	}
}
