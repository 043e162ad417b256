package domain

import "time"

// User mirrors the marketplace account row. UserType and Status are raw
// text ("LOCATAIRE", "Propriétaire", "bloqué"...).
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email" gorm:"index"`
	Phone     string    `json:"phone,omitempty"`
	UserType  *string   `json:"user_type"`
	Status    *string   `json:"status"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
