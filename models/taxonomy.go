package models

import "time"

// Pillar is the top level of the organizational taxonomy.
type Pillar struct {
	PillarID string     `gorm:"primaryKey;column:pillar_id" json:"id"`
	Name     string     `gorm:"column:name;unique" json:"name"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at,omitempty"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// Department belongs to a pillar. The parent reference is by name, matching
// the string taxonomy fields on ideas and users.
type Department struct {
	DepartmentID string     `gorm:"primaryKey;column:department_id" json:"id"`
	Name         string     `gorm:"column:name" json:"name"`
	Pillar       string     `gorm:"column:pillar" json:"pillar"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at,omitempty"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// Team belongs to a pillar and a department.
type Team struct {
	TeamID     string     `gorm:"primaryKey;column:team_id" json:"id"`
	Name       string     `gorm:"column:name" json:"name"`
	Pillar     string     `gorm:"column:pillar" json:"pillar"`
	Department string     `gorm:"column:department" json:"department"`
	CreateAt   *time.Time `gorm:"column:create_at" json:"create_at,omitempty"`
	DeleteAt   *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TechPerson is a named Tech & Engineering resource ideas can be assigned to.
type TechPerson struct {
	TechPersonID   string     `gorm:"primaryKey;column:tech_person_id" json:"id"`
	Name           string     `gorm:"column:name" json:"name"`
	Email          *string    `gorm:"column:email" json:"email,omitempty"`
	Specialization *string    `gorm:"column:specialization" json:"specialization,omitempty"`
	CreateAt       *time.Time `gorm:"column:create_at" json:"create_at,omitempty"`
	DeleteAt       *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (Pillar) TableName() string     { return "pillars" }
func (Department) TableName() string { return "departments" }
func (Team) TableName() string       { return "teams" }
func (TechPerson) TableName() string { return "tech_persons" }
