// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Owner is the single administrator of the store.
type Owner struct {
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Preferences  Preferences `json:"preferences"`
}

type Profile struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required,email"`
}

type Preferences struct {
	Theme              Theme `json:"theme" validate:"required,oneof=Light Dark System"`
	EmailNotifications bool  `json:"email_notifications"`
}

func (o *Owner) Profile() Profile {
	return Profile{Name: o.Name, Email: o.Email}
}

func (o *Owner) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	o.PasswordHash = string(hashedPassword)
	return nil
}

func (o *Owner) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password))
}
