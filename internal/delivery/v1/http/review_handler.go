package http

import (
	"net/http"

	"github.com/DRSN-tech/store-backend/internal/domain"
	"github.com/DRSN-tech/store-backend/internal/usecase"
	"github.com/DRSN-tech/store-backend/pkg/logger"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUC
	logger        logger.Logger
}

func NewReviewHandler(reviewUsecase usecase.ReviewUC, logger logger.Logger) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase, logger: logger}
}

// listReviews
//
//	@Summary	Отзывы
//	@Tags		reviews
//	@Produce	json
//	@Success	200	{array}	ReviewRes
//	@Router		/reviews [get]
func (h *ReviewHandler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewUsecase.ListReviews(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrReviewRes(reviews))
}

// createReview
//
//	@Summary	Новый отзыв
//	@Tags		reviews
//	@Accept		json
//	@Produce	json
//	@Param		review	body		ReviewReq	true	"Отзыв"
//	@Success	201		{object}	InsertRes
//	@Router		/reviews [post]
func (h *ReviewHandler) createReview(w http.ResponseWriter, r *http.Request) {
	var req ReviewReq
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	res, err := h.reviewUsecase.CreateReview(r.Context(), &domain.Review{
		Name:    req.Name,
		Email:   req.Email,
		Image:   req.Image,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toInsertRes(res))
}
