package usecase

import (
	"context"
	"fmt"
	"time"

	"shopsphere/internal/infrastructure/gemini"
	"shopsphere/pkg/errors"
)

type RecommendationUseCase struct {
	client *gemini.Client
}

func NewRecommendationUseCase(client *gemini.Client) *RecommendationUseCase {
	return &RecommendationUseCase{client: client}
}

type RecommendationInput struct {
	ProductName string `json:"productName" validate:"required"`
}

// RecommendProduct asks the generative model whether to buy now or wait and
// returns its answer verbatim.
func (uc *RecommendationUseCase) RecommendProduct(ctx context.Context, input RecommendationInput) (string, error) {
	if !uc.client.Configured() {
		return "", errors.Unavailable("Recommendation service is not configured")
	}

	prompt := fmt.Sprintf(
		"Today's date is %s. I am considering buying the product %q. "+
			"Based on typical pricing trends, seasonal sales and upcoming shopping events, "+
			"should I buy it now or wait for a better time? "+
			"Give a short, practical recommendation for a regular shopper.",
		time.Now().Format("January 2, 2006"), input.ProductName)

	return uc.client.Generate(ctx, prompt)
}
