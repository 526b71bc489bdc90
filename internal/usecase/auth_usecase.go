package usecase

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shopsphere/internal/domain/entity"
	"shopsphere/internal/domain/repository"
	"shopsphere/internal/infrastructure/auth"
	"shopsphere/pkg/errors"
	"shopsphere/pkg/logger"
)

const bcryptCost = 10

var gstNumberPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

type AuthUseCase struct {
	accounts repository.AccountRepository
	tokens   *auth.JWTManager
}

func NewAuthUseCase(accounts repository.AccountRepository, tokens *auth.JWTManager) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, tokens: tokens}
}

type RegisterBuyerInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type RegisterSellerInput struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	MobileNumber string `json:"mobileNumber" validate:"required,len=10,numeric"`
	ShopName     string `json:"shopName" validate:"required"`
	ShopAddress  string `json:"shopAddress" validate:"required"`
	GSTNumber    string `json:"gstNumber" validate:"omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterBuyer creates a buyer and issues a token. The email uniqueness
// check is two sequential reads (buyers, then sellers) before the insert;
// there is no atomic cross-collection constraint.
func (uc *AuthUseCase) RegisterBuyer(ctx context.Context, input RegisterBuyerInput) (*entity.Buyer, string, error) {
	if err := uc.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, "", errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	buyer := &entity.Buyer{
		ID:           uuid.New().String(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.accounts.CreateBuyer(ctx, buyer); err != nil {
		return nil, "", err
	}

	token, err := uc.tokens.Issue(buyer.ID, entity.RoleBuyer)
	if err != nil {
		return nil, "", err
	}

	logger.Info("Buyer registered: %s", buyer.ID)
	return buyer, token, nil
}

// RegisterSeller creates an unapproved seller. No token is issued; the seller
// cannot log in until an admin approves the account.
func (uc *AuthUseCase) RegisterSeller(ctx context.Context, input RegisterSellerInput) (*entity.Seller, error) {
	if input.GSTNumber != "" && !gstNumberPattern.MatchString(input.GSTNumber) {
		return nil, errors.Validation([]string{"gstNumber must be a valid GST number"})
	}

	if err := uc.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}
	if _, err := uc.accounts.GetSellerByMobile(ctx, input.MobileNumber); err == nil {
		return nil, errors.Conflict("A seller with this mobile number already exists", nil)
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if _, err := uc.accounts.GetSellerByShopName(ctx, input.ShopName); err == nil {
		return nil, errors.Conflict("A seller with this shop name already exists", nil)
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if input.GSTNumber != "" {
		if _, err := uc.accounts.GetSellerByGSTNumber(ctx, input.GSTNumber); err == nil {
			return nil, errors.Conflict("A seller with this GST number already exists", nil)
		} else if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	seller := &entity.Seller{
		ID:           uuid.New().String(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		MobileNumber: input.MobileNumber,
		ShopName:     input.ShopName,
		ShopAddress:  input.ShopAddress,
		GSTNumber:    input.GSTNumber,
		IsApproved:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.accounts.CreateSeller(ctx, seller); err != nil {
		return nil, err
	}

	logger.Info("Seller registered (pending approval): %s", seller.ID)
	return seller, nil
}

// Login resolves the email across buyers, sellers, then admins. Unapproved
// sellers are refused even with correct credentials.
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*entity.Account, string, error) {
	account, err := uc.accounts.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, "", errors.Unauthorized("Invalid email or password", nil)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", errors.Unauthorized("Invalid email or password", nil)
	}

	if account.Role == entity.RoleSeller && !account.Approved {
		return nil, "", errors.Forbidden("Your account is pending admin approval", nil)
	}

	token, err := uc.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return nil, "", err
	}

	logger.Info("Login: %s (%s)", account.ID, account.Role)
	return account, token, nil
}

func (uc *AuthUseCase) ensureEmailFree(ctx context.Context, email string) error {
	if _, err := uc.accounts.GetBuyerByEmail(ctx, email); err == nil {
		return errors.Conflict("An account with this email already exists", nil)
	} else if !errors.Is(err, "NOT_FOUND") {
		return err
	}
	if _, err := uc.accounts.GetSellerByEmail(ctx, email); err == nil {
		return errors.Conflict("An account with this email already exists", nil)
	} else if !errors.Is(err, "NOT_FOUND") {
		return err
	}
	return nil
}
