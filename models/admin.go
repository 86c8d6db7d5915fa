package models

import "time"

// Admin is a console operator account.
type Admin struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"` // e.g., "support", "superadmin"
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

type LegalSection struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Content  string `json:"content"`
	Category string `json:"category"` // e.g., "Seeker", "Partner"
	Version  string `json:"version"`  // e.g., "v1.0"
	Updated  string `json:"updated"`  // ISO8601 timestamp
}

const (
	RoleSeeker  = "Seeker"
	RolePartner = "Partner"
	RoleBoth    = "Both"
)
