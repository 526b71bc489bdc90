package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopsphere/internal/adapter/api/middleware"
	"shopsphere/internal/usecase"
	"shopsphere/pkg/response"
	"shopsphere/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{productUseCase: productUseCase}
}

func (h *ProductHandler) Create(c echo.Context) error {
	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), middleware.GetUserID(c), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusCreated, "Product created", map[string]interface{}{"product": product})
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productUseCase.ListProducts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	limit, offset := utils.GetPaginationParams(c)
	total := len(products)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return response.Success(c, http.StatusOK, "Products retrieved", map[string]interface{}{
		"products": products[offset:end],
		"total":    total,
	})
}

func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Product retrieved", map[string]interface{}{"product": product})
}

func (h *ProductHandler) ListBySeller(c echo.Context) error {
	products, err := h.productUseCase.ListSellerProducts(
		c.Request().Context(),
		middleware.GetUserID(c),
		middleware.GetRole(c),
		c.Param("sellerId"),
	)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Products retrieved", map[string]interface{}{"products": products})
}

func (h *ProductHandler) Update(c echo.Context) error {
	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(
		c.Request().Context(),
		middleware.GetUserID(c),
		middleware.GetRole(c),
		c.Param("id"),
		input,
	)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Product updated", map[string]interface{}{"product": product})
}

func (h *ProductHandler) Delete(c echo.Context) error {
	err := h.productUseCase.DeleteProduct(
		c.Request().Context(),
		middleware.GetUserID(c),
		middleware.GetRole(c),
		c.Param("id"),
	)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Product deleted", nil)
}
