package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopsphere/internal/adapter/api/middleware"
	"shopsphere/internal/usecase"
	"shopsphere/pkg/response"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{adminUseCase: adminUseCase}
}

func (h *AdminHandler) Register(c echo.Context) error {
	var input usecase.RegisterAdminInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	admin, err := h.adminUseCase.RegisterAdmin(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusCreated, "Admin registered", map[string]interface{}{"admin": admin})
}

func (h *AdminHandler) ListPendingSellers(c echo.Context) error {
	sellers, err := h.adminUseCase.ListPendingSellers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Pending sellers retrieved", map[string]interface{}{"sellers": sellers})
}

func (h *AdminHandler) ListSellers(c echo.Context) error {
	sellers, err := h.adminUseCase.ListSellers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Sellers retrieved", map[string]interface{}{"sellers": sellers})
}

func (h *AdminHandler) ApproveSeller(c echo.Context) error {
	seller, err := h.adminUseCase.ApproveSeller(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Seller approved", map[string]interface{}{"seller": seller})
}

func (h *AdminHandler) RejectSeller(c echo.Context) error {
	seller, err := h.adminUseCase.RejectSeller(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Seller approval revoked", map[string]interface{}{"seller": seller})
}

func (h *AdminHandler) ListCustomers(c echo.Context) error {
	customers, err := h.adminUseCase.ListCustomers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Customers retrieved", map[string]interface{}{"customers": customers})
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	role, err := h.adminUseCase.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "User deleted", map[string]interface{}{"role": role})
}

func (h *AdminHandler) CountUsers(c echo.Context) error {
	counts, err := h.adminUseCase.CountUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "User counts retrieved", map[string]interface{}{"counts": counts})
}

func (h *AdminHandler) ListAdmins(c echo.Context) error {
	admins, err := h.adminUseCase.ListAdmins(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Admins retrieved", map[string]interface{}{"admins": admins})
}

func (h *AdminHandler) UpdateAdminRole(c echo.Context) error {
	var input usecase.UpdateAdminRoleInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	admin, err := h.adminUseCase.UpdateAdminRole(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Admin role updated", map[string]interface{}{"admin": admin})
}

func (h *AdminHandler) DeleteAdmin(c echo.Context) error {
	if err := h.adminUseCase.DeleteAdmin(c.Request().Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Admin deleted", nil)
}
