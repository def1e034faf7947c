package model

import "time"

// User is an account. PasswordHash never leaves the server.
type User struct {
	ID           string    `db:"id" json:"_id"`
	FullName     string    `db:"full_name" json:"fullName"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdOn"`
}

type CreateAccountRequest struct {
	FullName string `json:"fullName" label:"Full name" validate:"required,max=200"`
	Email    string `json:"email" label:"Email" validate:"required,email,max=320"`
	Password string `json:"password" label:"Password" validate:"required,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" label:"Email" validate:"required"`
	Password string `json:"password" label:"Password" validate:"required"`
}
