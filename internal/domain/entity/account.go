package entity

import (
	"strings"
	"time"
)

type Role string

const (
	RoleBuyer      Role = "buyer"
	RoleSeller     Role = "seller"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// IsAdmin reports whether the role grants admin-panel access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type Buyer struct {
	ID           string    `firestore:"id" json:"id"`
	FirstName    string    `firestore:"firstName" json:"firstName"`
	LastName     string    `firestore:"lastName" json:"lastName"`
	Email        string    `firestore:"email" json:"email"`
	PasswordHash string    `firestore:"passwordHash" json:"-"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type Seller struct {
	ID           string    `firestore:"id" json:"id"`
	FirstName    string    `firestore:"firstName" json:"firstName"`
	LastName     string    `firestore:"lastName" json:"lastName"`
	Email        string    `firestore:"email" json:"email"`
	PasswordHash string    `firestore:"passwordHash" json:"-"`
	MobileNumber string    `firestore:"mobileNumber" json:"mobileNumber"`
	ShopName     string    `firestore:"shopName" json:"shopName"`
	ShopAddress  string    `firestore:"shopAddress" json:"shopAddress"`
	GSTNumber    string    `firestore:"gstNumber,omitempty" json:"gstNumber,omitempty"`
	IsApproved   bool      `firestore:"isApproved" json:"isApproved"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type Admin struct {
	ID           string    `firestore:"id" json:"id"`
	Name         string    `firestore:"name" json:"name"`
	Email        string    `firestore:"email" json:"email"`
	PasswordHash string    `firestore:"passwordHash" json:"-"`
	Role         Role      `firestore:"role" json:"role"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Account is the role-tagged view shared by login and chat display-name
// resolution, so callers never switch on three concrete types.
type Account struct {
	ID           string
	Role         Role
	DisplayName  string
	Email        string
	PasswordHash string
	Approved     bool
}

func (b *Buyer) Account() *Account {
	return &Account{
		ID:           b.ID,
		Role:         RoleBuyer,
		DisplayName:  strings.TrimSpace(b.FirstName + " " + b.LastName),
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		Approved:     true,
	}
}

func (s *Seller) Account() *Account {
	name := s.ShopName
	if name == "" {
		name = strings.TrimSpace(s.FirstName + " " + s.LastName)
	}
	return &Account{
		ID:           s.ID,
		Role:         RoleSeller,
		DisplayName:  name,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		Approved:     s.IsApproved,
	}
}

func (a *Admin) Account() *Account {
	return &Account{
		ID:           a.ID,
		Role:         a.Role,
		DisplayName:  a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Approved:     true,
	}
}
