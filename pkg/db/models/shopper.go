package models

// Shopper represents the canonical shopper identity. Reference data: the
// session reads it, never writes it.
type Shopper struct {
	ID           int64  `gorm:"column:shopper_id;primaryKey;autoIncrement"`
	FirstName    string `gorm:"column:shopper_first_name;not null"`
	Surname      string `gorm:"column:shopper_surname;not null"`
	EmailAddress string `gorm:"column:shopper_email_address"`
	DateJoined   string `gorm:"column:date_joined"`
}

func (Shopper) TableName() string { return "shoppers" }
