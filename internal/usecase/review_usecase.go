package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/pkg/e"
)

type ReviewUseCase struct {
	reviewRepo ReviewRepository
}

func NewReviewUC(reviewRepo ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{reviewRepo: reviewRepo}
}

func (r *ReviewUseCase) ListReviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := r.reviewRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap("ReviewUseCase.ListReviews", err)
	}

	return reviews, nil
}

func (r *ReviewUseCase) CreateReview(ctx context.Context, review *domain.Review) (*InsertRes, error) {
	review.CreatedAt = time.Now().UTC()

	res, err := r.reviewRepo.Create(ctx, review)
	if err != nil {
		return nil, e.Wrap("ReviewUseCase.CreateReview", err)
	}

	return res, nil
}
