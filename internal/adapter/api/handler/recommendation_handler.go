package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopsphere/internal/usecase"
	"shopsphere/pkg/response"
)

type RecommendationHandler struct {
	recommendationUseCase *usecase.RecommendationUseCase
}

func NewRecommendationHandler(recommendationUseCase *usecase.RecommendationUseCase) *RecommendationHandler {
	return &RecommendationHandler{recommendationUseCase: recommendationUseCase}
}

func (h *RecommendationHandler) RecommendProduct(c echo.Context) error {
	var input usecase.RecommendationInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	recommendation, err := h.recommendationUseCase.RecommendProduct(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Recommendation generated", map[string]interface{}{
		"recommendation": recommendation,
	})
}
