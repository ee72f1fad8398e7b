package api

import (
	"net/http"

	reqdto "rental-cart/internal/handler/dto/request"
	resdto "rental-cart/internal/handler/dto/response"
	"rental-cart/internal/handler/httperr"
	"rental-cart/internal/usecase"
	"rental-cart/internal/usecase/submission"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	carts usecase.CartUseCase
}

func NewSubmissionHandler(carts usecase.CartUseCase) *SubmissionHandler {
	return &SubmissionHandler{carts: carts}
}

// @Summary Submit cart
// @Description Send the cart as a quote request ("quote", default) or a direct order ("order"). The cart is cleared on success.
// @Tags submission
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitRequest false "Submission mode"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/cart/submit [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.SubmitRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	mode, err := submission.ParseMode(req.Mode)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid submission mode", nil)
		return
	}

	receipt, err := h.carts.Submit(c.Request.Context(), sid, mode)
	if err != nil {
		abortWithCartError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubmission(mode, receipt))
}

// @Summary Submission status
// @Description Phase of the session's last submission attempt and its outcome
// @Tags submission
// @Produce json
// @Success 200 {object} resdto.SubmissionStatusResponse
// @Router /api/cart/submission [get]
func (h *SubmissionHandler) Status(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromStatus(h.carts.SubmissionStatus(c.Request.Context(), sid)))
}
