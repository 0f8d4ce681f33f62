package models

import "time"

// Admin roles.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
	RoleSubAdmin   = "sub_admin"
)

// AdminUser is a back-office account. The password hash never serializes
// to JSON.
type AdminUser struct {
	Meta         `bson:",inline"`
	Email        string     `bson:"email" json:"email"`
	Username     string     `bson:"username" json:"username"`
	FullName     string     `bson:"full_name" json:"full_name"`
	PasswordHash string     `bson:"password_hash" json:"-"`
	Role         string     `bson:"role" json:"role"`
	IsActive     bool       `bson:"is_active" json:"is_active"`
	LastLogin    *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// AppUser is an end-user account.
type AppUser struct {
	Meta            `bson:",inline"`
	Email           string     `bson:"email" json:"email"`
	FullName        string     `bson:"full_name" json:"full_name"`
	PasswordHash    string     `bson:"password_hash" json:"-"`
	IsActive        bool       `bson:"is_active" json:"is_active"`
	IsVerified      bool       `bson:"is_verified" json:"is_verified"`
	Skills          []string   `bson:"skills" json:"skills"`
	CareerToolsUsed int64      `bson:"career_tools_used" json:"career_tools_used"`
	LastLogin       *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// AppUserUpdate is the profile-update payload for AppUser.
type AppUserUpdate struct {
	FullName *string  `bson:"full_name" json:"full_name"`
	Skills   []string `bson:"skills" json:"skills"`
}

// SubAdminUpdate is the partial-update payload used by super-admin
// management of sub-admin accounts.
type SubAdminUpdate struct {
	Username *string `bson:"username" json:"username"`
	FullName *string `bson:"full_name" json:"full_name"`
	IsActive *bool   `bson:"is_active" json:"is_active"`
}
