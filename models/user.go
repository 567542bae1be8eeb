package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// User is the session-facing identity shape.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// Profile is the stored account record. Theme lives here so the
// preference survives process restarts.
type Profile struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"passwordHash" json:"-"` // never expose
	Avatar       string        `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Theme        Theme         `bson:"theme" json:"theme"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}

func (p Profile) ToUser() User {
	return User{
		ID:     p.ID.Hex(),
		Name:   p.Name,
		Email:  p.Email,
		Avatar: p.Avatar,
	}
}

type RefreshToken struct {
	ID         bson.ObjectID `bson:"_id,omitempty"`
	UserID     bson.ObjectID `bson:"userId"`
	TokenHash  string        `bson:"tokenHash"`
	ExpiresAt  time.Time     `bson:"expiresAt"`
	CreatedAt  time.Time     `bson:"createdAt"`
	RevokedAt  *time.Time    `bson:"revokedAt,omitempty"`
	ReplacedBy *string       `bson:"replacedBy,omitempty"`
}
