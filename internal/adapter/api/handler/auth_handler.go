package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopsphere/internal/usecase"
	"shopsphere/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

func (h *AuthHandler) RegisterBuyer(c echo.Context) error {
	var input usecase.RegisterBuyerInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	buyer, token, err := h.authUseCase.RegisterBuyer(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, http.StatusCreated, "Registration successful", map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":        buyer.ID,
			"firstName": buyer.FirstName,
			"lastName":  buyer.LastName,
			"email":     buyer.Email,
			"role":      "buyer",
		},
	})
}

func (h *AuthHandler) RegisterSeller(c echo.Context) error {
	var input usecase.RegisterSellerInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	seller, err := h.authUseCase.RegisterSeller(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, http.StatusCreated, "Registration successful, your account is pending admin approval", map[string]interface{}{
		"seller": map[string]interface{}{
			"id":         seller.ID,
			"shopName":   seller.ShopName,
			"email":      seller.Email,
			"isApproved": seller.IsApproved,
		},
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	account, token, err := h.authUseCase.Login(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, http.StatusOK, "Login successful", map[string]interface{}{
		"token": token,
		"user": map[string]interface{}{
			"id":   account.ID,
			"name": account.DisplayName,
			"role": account.Role,
		},
	})
}
