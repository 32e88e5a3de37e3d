// internal/models/customer.go
package models

type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	JoinDate string `json:"join_date"`
	Avatar   Avatar `json:"avatar"`
}

// Avatar carries an image source and the initials shown when it is empty.
type Avatar struct {
	Src      string `json:"src"`
	Fallback string `json:"fallback"`
}
