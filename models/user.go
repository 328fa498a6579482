package models

import "time"

// UserRole controls access to the admin surfaces.
type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleSalonAdmin UserRole = "salon_admin"
	RoleSuperAdmin UserRole = "superadmin"
)

// User is the thin identity record behind the checkout gate.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         UserRole  `bson:"role" json:"role"`
	// Salons a salon_admin may manage.
	AssignedSalonIDs []string  `bson:"assignedSalonIds,omitempty" json:"assignedSalonIds,omitempty"`
	Active           bool      `bson:"active" json:"active"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// CanManage reports whether the user may administer the given salon.
func (u *User) CanManage(salonID string) bool {
	if u.Role == RoleSuperAdmin {
		return true
	}
	if u.Role != RoleSalonAdmin {
		return false
	}
	for _, id := range u.AssignedSalonIDs {
		if id == salonID {
			return true
		}
	}
	return false
}
