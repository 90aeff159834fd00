// Package models holds client-side data transfer types.
package models

// UserProfile is the authenticated user's public profile as reported
// by the server. It never carries credential material.
type UserProfile struct {
	ID    string
	Email string
	Name  string
}
