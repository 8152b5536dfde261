// Package session is the viewer session/auth scaffolding. The player
// core never touches it: sessions exist so an integrating frontend can
// attach an identity to a viewer, nothing more.
package session

import "errors"

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionAlreadyExists = errors.New("session already exists")
)

type SetSessionParams struct {
	Token    string
	ViewerId string
}
