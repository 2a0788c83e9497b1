package contact

import "time"

type Status string

const (
	StatusUnread    Status = "unread"
	StatusRead      Status = "read"
	StatusResponded Status = "responded"
)

type Message struct {
	ID          string     `gorm:"primaryKey"`
	FirstName   string     `gorm:"column:first_name"`
	LastName    string     `gorm:"column:last_name"`
	Email       string     `gorm:"column:email"`
	Subject     string     `gorm:"column:subject"`
	Body        string     `gorm:"column:message"`
	Status      Status     `gorm:"column:status"`
	RespondedAt *time.Time `gorm:"column:responded_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
}

func (Message) TableName() string { return "contact_messages" }

func (m Message) FullName() string {
	return m.FirstName + " " + m.LastName
}
