package domain

import "github.com/google/uuid"

type ContactGroup struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	UserID string    `json:"userId"`
}

// Contact is an emergency contact joined with its group.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"groupId"`
	GroupName string    `json:"groupName"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
}

// Identity is the authenticated caller as supplied by the identity provider.
type Identity struct {
	UserID   string
	Username string
}
