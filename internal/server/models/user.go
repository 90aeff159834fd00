// Package models contains server-side domain records.
package models

import "time"

// User is the identity record owned by the user directory.
// Email is stored case-normalized (lowercase, trimmed) and is unique.
// PasswordHash is the opaque output of the password hasher; plaintext
// passwords are never persisted.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// UserView is the redacted representation of a User which is safe to hand
// to transport layers. It deliberately has no hash field.
type UserView struct {
	ID    string
	Email string
	Name  string
}

// View returns the redacted representation of u.
func (u *User) View() *UserView {
	return &UserView{ID: u.ID, Email: u.Email, Name: u.Name}
}
