package gorm

// EmailSubject maps a logical notification name ("registration",
// "ticket", "bill") to the display subject line used for that mail.
type EmailSubject struct {
	ID      uint   `gorm:"column:id;primaryKey"`
	Name    string `gorm:"column:name;type:varchar(64);uniqueIndex"`
	Subject string `gorm:"column:subject;type:varchar(255)"`
}

// TableName specifies the table name for GORM
func (EmailSubject) TableName() string {
	return "email_subjects"
}
