package models

import (
	"time"
)

// Role values stored in users.role.
const (
	RoleUser     = "user"
	RoleApprover = "approver"
	RoleAdmin    = "admin"
)

// Sub-role values for approvers. SubRole is meaningless for other roles.
const (
	SubRoleApprover     = "approver"
	SubRoleCIExcellence = "ci_excellence"
)

type User struct {
	UserID    string  `gorm:"primaryKey;column:user_id" json:"id"`
	Username  string  `gorm:"column:username;unique" json:"username"`
	Email     string  `gorm:"column:email;unique" json:"email"`
	Password  string  `gorm:"column:password" json:"-"`
	FirstName *string `gorm:"column:first_name" json:"first_name,omitempty"`
	LastName  *string `gorm:"column:last_name" json:"last_name,omitempty"`
	Role      string  `gorm:"column:role" json:"role"`
	SubRole   *string `gorm:"column:sub_role" json:"sub_role,omitempty"`
	Pillar    *string `gorm:"column:pillar" json:"pillar,omitempty"`
	Department *string `gorm:"column:department" json:"department,omitempty"`
	Team      *string `gorm:"column:team" json:"team,omitempty"`
	Manager   *string `gorm:"column:manager" json:"manager,omitempty"`

	// Approval scope for role=approver: which pillars/departments this
	// approver may act on. Stored as JSON arrays.
	ApprovedPillars     []string `gorm:"column:approved_pillars;serializer:json" json:"approved_pillars"`
	ApprovedDepartments []string `gorm:"column:approved_departments;serializer:json" json:"approved_departments"`

	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsCIExcellence reports whether the user acts as the C.I. Excellence Team.
func (u *User) IsCIExcellence() bool {
	return u.Role == RoleApprover && u.SubRole != nil && *u.SubRole == SubRoleCIExcellence
}

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleApprover, RoleAdmin:
		return true
	}
	return false
}

// ValidSubRole reports whether subRole is one of the known approver sub-roles.
func ValidSubRole(subRole string) bool {
	switch subRole {
	case SubRoleApprover, SubRoleCIExcellence:
		return true
	}
	return false
}
