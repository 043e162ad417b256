package domain

import "time"

type SupportTicket struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"index"`
	Subject   string    `json:"subject"`
	Status    *string   `json:"status"`
	Priority  *string   `json:"priority"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}
