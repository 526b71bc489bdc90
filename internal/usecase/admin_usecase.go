package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shopsphere/internal/domain/entity"
	"shopsphere/internal/domain/repository"
	"shopsphere/pkg/errors"
	"shopsphere/pkg/logger"
)

type AdminUseCase struct {
	accounts repository.AccountRepository
}

func NewAdminUseCase(accounts repository.AccountRepository) *AdminUseCase {
	return &AdminUseCase{accounts: accounts}
}

type RegisterAdminInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin superadmin"`
}

type UpdateAdminRoleInput struct {
	Role string `json:"role" validate:"required,oneof=admin superadmin"`
}

func (uc *AdminUseCase) RegisterAdmin(ctx context.Context, input RegisterAdminInput) (*entity.Admin, error) {
	if _, err := uc.accounts.GetAdminByEmail(ctx, input.Email); err == nil {
		return nil, errors.Conflict("An admin with this email already exists", nil)
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	role := entity.Role(input.Role)
	if role == "" {
		role = entity.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	admin := &entity.Admin{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.accounts.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	logger.Info("Admin registered: %s (%s)", admin.ID, admin.Role)
	return admin, nil
}

func (uc *AdminUseCase) ListPendingSellers(ctx context.Context) ([]*entity.Seller, error) {
	approved := false
	return uc.accounts.ListSellers(ctx, &approved)
}

func (uc *AdminUseCase) ListSellers(ctx context.Context) ([]*entity.Seller, error) {
	return uc.accounts.ListSellers(ctx, nil)
}

// ApproveSeller flips the approval flag; approving an already approved
// seller is reported as an error rather than a silent no-op.
func (uc *AdminUseCase) ApproveSeller(ctx context.Context, sellerID string) (*entity.Seller, error) {
	seller, err := uc.accounts.GetSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller.IsApproved {
		return nil, errors.BadRequest("Seller is already approved", nil)
	}

	seller.IsApproved = true
	seller.UpdatedAt = time.Now()
	if err := uc.accounts.UpdateSeller(ctx, seller); err != nil {
		return nil, err
	}

	logger.Info("Seller approved: %s", seller.ID)
	return seller, nil
}

func (uc *AdminUseCase) RejectSeller(ctx context.Context, sellerID string) (*entity.Seller, error) {
	seller, err := uc.accounts.GetSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if !seller.IsApproved {
		return nil, errors.BadRequest("Seller is not approved", nil)
	}

	seller.IsApproved = false
	seller.UpdatedAt = time.Now()
	if err := uc.accounts.UpdateSeller(ctx, seller); err != nil {
		return nil, err
	}

	logger.Info("Seller approval revoked: %s", seller.ID)
	return seller, nil
}

func (uc *AdminUseCase) ListCustomers(ctx context.Context) ([]*entity.Buyer, error) {
	return uc.accounts.ListBuyers(ctx)
}

// DeleteUser removes the id from buyers, falling back to sellers.
func (uc *AdminUseCase) DeleteUser(ctx context.Context, userID string) (entity.Role, error) {
	err := uc.accounts.DeleteBuyer(ctx, userID)
	if err == nil {
		logger.Info("Buyer deleted: %s", userID)
		return entity.RoleBuyer, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return "", err
	}

	err = uc.accounts.DeleteSeller(ctx, userID)
	if err == nil {
		logger.Info("Seller deleted: %s", userID)
		return entity.RoleSeller, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return "", err
	}
	return "", errors.NotFound("User", nil)
}

type UserCounts struct {
	Buyers  int `json:"buyers"`
	Sellers int `json:"sellers"`
	Total   int `json:"total"`
}

func (uc *AdminUseCase) CountUsers(ctx context.Context) (*UserCounts, error) {
	buyers, err := uc.accounts.ListBuyers(ctx)
	if err != nil {
		return nil, err
	}
	sellers, err := uc.accounts.ListSellers(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &UserCounts{
		Buyers:  len(buyers),
		Sellers: len(sellers),
		Total:   len(buyers) + len(sellers),
	}, nil
}

func (uc *AdminUseCase) ListAdmins(ctx context.Context) ([]*entity.Admin, error) {
	return uc.accounts.ListAdmins(ctx)
}

// UpdateAdminRole changes an admin's role. Superadmins cannot demote
// themselves.
func (uc *AdminUseCase) UpdateAdminRole(ctx context.Context, callerID, adminID string, input UpdateAdminRoleInput) (*entity.Admin, error) {
	if callerID == adminID {
		return nil, errors.BadRequest("You cannot change your own role", nil)
	}

	admin, err := uc.accounts.GetAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	admin.Role = entity.Role(input.Role)
	admin.UpdatedAt = time.Now()
	if err := uc.accounts.UpdateAdmin(ctx, admin); err != nil {
		return nil, err
	}

	logger.Info("Admin role updated: %s -> %s", admin.ID, admin.Role)
	return admin, nil
}

// DeleteAdmin removes an admin account. Self-deletion is refused, and the
// last superadmin can never be removed.
func (uc *AdminUseCase) DeleteAdmin(ctx context.Context, callerID, adminID string) error {
	if callerID == adminID {
		return errors.BadRequest("You cannot delete your own account", nil)
	}

	admin, err := uc.accounts.GetAdmin(ctx, adminID)
	if err != nil {
		return err
	}

	if admin.Role == entity.RoleSuperAdmin {
		admins, err := uc.accounts.ListAdmins(ctx)
		if err != nil {
			return err
		}
		superadmins := 0
		for _, a := range admins {
			if a.Role == entity.RoleSuperAdmin {
				superadmins++
			}
		}
		if superadmins <= 1 {
			return errors.BadRequest("Cannot delete the last superadmin", nil)
		}
	}

	if err := uc.accounts.DeleteAdmin(ctx, adminID); err != nil {
		return err
	}
	logger.Info("Admin deleted: %s", adminID)
	return nil
}
