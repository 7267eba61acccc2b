package gorm

import (
	"time"

	"skyward/aerodesk/internal/constants"
)

// Passenger is the account record for both travelers and staff.
// Identity is the email address; there is no separate username.
type Passenger struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	FirstName    string    `gorm:"column:first_name;type:varchar(255)"`
	LastName     string    `gorm:"column:last_name;type:varchar(255)"`
	Email        string    `gorm:"column:email;type:varchar(254);uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255)"`
	IsStaff      bool      `gorm:"column:is_staff;default:false"`
	IsSuperuser  bool      `gorm:"column:is_superuser;default:false"`
	DateJoined   time.Time `gorm:"column:date_joined;autoCreateTime"`

	// Relationships
	Groups  []StaffGroup `gorm:"many2many:passenger_groups"`
	Tickets []Ticket     `gorm:"foreignKey:PassengerID"`
}

// TableName specifies the table name for GORM
func (Passenger) TableName() string {
	return "passengers"
}

// InGroup reports whether the passenger belongs to the named group.
// Groups must be preloaded.
func (p *Passenger) InGroup(name constants.StaffGroup) bool {
	for _, g := range p.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

// StaffGroup is a named role granting a fixed capability set
// (see constants.GroupCapabilities).
type StaffGroup struct {
	ID   uint                 `gorm:"column:id;primaryKey"`
	Name constants.StaffGroup `gorm:"column:name;type:varchar(64);uniqueIndex"`
}

// TableName specifies the table name for GORM
func (StaffGroup) TableName() string {
	return "staff_groups"
}
