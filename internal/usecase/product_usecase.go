package usecase

import (
	"context"
	"time"

	"shopsphere/internal/domain/entity"
	"shopsphere/internal/domain/repository"
	"shopsphere/pkg/errors"
	"shopsphere/pkg/logger"
)

type ProductUseCase struct {
	products repository.ProductRepository
	accounts repository.AccountRepository
}

func NewProductUseCase(products repository.ProductRepository, accounts repository.AccountRepository) *ProductUseCase {
	return &ProductUseCase{products: products, accounts: accounts}
}

type CreateProductInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=1000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// UpdateProductInput carries only the fields a seller may change. Seller and
// timestamps are never client-writable; unknown body fields are dropped at
// bind time.
type UpdateProductInput struct {
	Name        *string  `json:"name" validate:"omitempty,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}

// CreateProduct is restricted to approved sellers.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, sellerID string, input CreateProductInput) (*entity.Product, error) {
	seller, err := uc.accounts.GetSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if !seller.IsApproved {
		return nil, errors.Forbidden("Only approved sellers can create products", nil)
	}

	if !entity.IsValidCategory(input.Category) {
		return nil, errors.Validation([]string{"category must be one of the supported categories"})
	}

	now := time.Now()
	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		IsAvailable: input.Stock > 0,
		SellerID:    sellerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product created: %s by seller %s", product.ID, sellerID)
	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.products.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.products.List(ctx)
}

// ListSellerProducts lets a seller see their own catalog and admins see any.
func (uc *ProductUseCase) ListSellerProducts(ctx context.Context, callerID string, callerRole entity.Role, sellerID string) ([]*entity.Product, error) {
	if !callerRole.IsAdmin() && callerID != sellerID {
		return nil, errors.Forbidden("You can only view your own products", nil)
	}
	return uc.products.ListBySeller(ctx, sellerID)
}

// UpdateProduct applies a partial update. Availability tracks stock whenever
// stock changes.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, callerID string, callerRole entity.Role, productID string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !callerRole.IsAdmin() && product.SellerID != callerID {
		return nil, errors.Forbidden("You can only update your own products", nil)
	}

	if input.Category != nil && !entity.IsValidCategory(*input.Category) {
		return nil, errors.Validation([]string{"category must be one of the supported categories"})
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
		product.IsAvailable = *input.Stock > 0
	}
	product.UpdatedAt = time.Now()

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, callerID string, callerRole entity.Role, productID string) error {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if !callerRole.IsAdmin() && product.SellerID != callerID {
		return errors.Forbidden("You can only delete your own products", nil)
	}

	if err := uc.products.Delete(ctx, productID); err != nil {
		return err
	}
	logger.Info("Product deleted: %s", productID)
	return nil
}
