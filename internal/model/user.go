package model

import "time"

// User is the stored credential record. Email and username are persisted
// lowercased; the password hash is a self-describing PHC string, so no cost
// parameters are stored separately.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
