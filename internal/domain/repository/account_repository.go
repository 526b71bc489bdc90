package repository

import (
	"context"

	"shopsphere/internal/domain/entity"
)

// AccountRepository covers the three identity collections plus the
// cross-collection lookups login and chat need.
type AccountRepository interface {
	CreateBuyer(ctx context.Context, buyer *entity.Buyer) error
	GetBuyer(ctx context.Context, id string) (*entity.Buyer, error)
	GetBuyerByEmail(ctx context.Context, email string) (*entity.Buyer, error)
	ListBuyers(ctx context.Context) ([]*entity.Buyer, error)
	DeleteBuyer(ctx context.Context, id string) error

	CreateSeller(ctx context.Context, seller *entity.Seller) error
	GetSeller(ctx context.Context, id string) (*entity.Seller, error)
	GetSellerByEmail(ctx context.Context, email string) (*entity.Seller, error)
	GetSellerByMobile(ctx context.Context, mobile string) (*entity.Seller, error)
	GetSellerByShopName(ctx context.Context, shopName string) (*entity.Seller, error)
	GetSellerByGSTNumber(ctx context.Context, gstNumber string) (*entity.Seller, error)
	// approved == nil lists all sellers.
	ListSellers(ctx context.Context, approved *bool) ([]*entity.Seller, error)
	UpdateSeller(ctx context.Context, seller *entity.Seller) error
	DeleteSeller(ctx context.Context, id string) error

	CreateAdmin(ctx context.Context, admin *entity.Admin) error
	GetAdmin(ctx context.Context, id string) (*entity.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
	ListAdmins(ctx context.Context) ([]*entity.Admin, error)
	UpdateAdmin(ctx context.Context, admin *entity.Admin) error
	DeleteAdmin(ctx context.Context, id string) error

	// FindByEmail scans buyers, then sellers, then admins.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	// Resolve loads the account view for a known id and role.
	Resolve(ctx context.Context, id string, role entity.Role) (*entity.Account, error)
}
