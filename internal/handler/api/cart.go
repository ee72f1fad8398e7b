package api

import (
	"errors"
	"net/http"

	"rental-cart/internal/domain/cart"
	reqdto "rental-cart/internal/handler/dto/request"
	resdto "rental-cart/internal/handler/dto/response"
	"rental-cart/internal/handler/httperr"
	"rental-cart/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	carts usecase.CartUseCase
}

func NewCartHandler(carts usecase.CartUseCase) *CartHandler {
	return &CartHandler{carts: carts}
}

// @Summary Get cart
// @Description Current cart of the caller's session
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromState(h.carts.GetCart(c.Request.Context(), sid)))
}

// @Summary Add line
// @Description Add a product for a rental period. Adding an existing product and period merges quantities. The backend must confirm availability first.
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddLineRequest true "Line to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/cart/lines [post]
func (h *CartHandler) AddLine(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	state, err := h.carts.AddLine(c.Request.Context(), sid, in)
	if err != nil {
		abortWithCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromState(state))
}

// @Summary Update line quantity
// @Description Quantities below 1 leave the cart unchanged and return a warning. Increases are gated on availability.
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cart/lines/quantity [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	key, err := req.Key()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	state, err := h.carts.UpdateQuantity(c.Request.Context(), sid, key, *req.Quantity)
	if errors.Is(err, cart.ErrInvalidQuantity) {
		resp := resdto.FromState(state)
		resp.Warning = err.Error()
		c.JSON(http.StatusOK, resp)
		return
	}
	if err != nil {
		abortWithCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromState(state))
}

// @Summary Update line notes
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateLineNotesRequest true "Line notes"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/lines/notes [put]
func (h *CartHandler) UpdateLineNotes(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateLineNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	key, err := req.Key()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	state, err := h.carts.UpdateLineNotes(c.Request.Context(), sid, key, req.Notes)
	if err != nil {
		abortWithCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromState(state))
}

// @Summary Remove line
// @Tags cart
// @Produce json
// @Param productId query int true "Product ID"
// @Param startDate query string true "First rental day (YYYY-MM-DD)"
// @Param endDate query string true "Last rental day (YYYY-MM-DD)"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/lines [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.LineKeyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	key, err := req.Key()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	state, err := h.carts.RemoveLine(c.Request.Context(), sid, key)
	if err != nil {
		abortWithCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromState(state))
}

// @Summary Set customer notes
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerNotesRequest true "Notes for the whole order"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/notes [put]
func (h *CartHandler) SetCustomerNotes(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.CustomerNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromState(h.carts.SetCustomerNotes(c.Request.Context(), sid, req.Notes)))
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromState(h.carts.Clear(c.Request.Context(), sid)))
}

// @Summary Check availability
// @Description Ask the backend how many units remain for a product over a period
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AvailabilityRequest true "Product, period and wanted quantity"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/cart/availability [post]
func (h *CartHandler) CheckAvailability(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	key, err := req.Key()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	view, err := h.carts.CheckAvailability(c.Request.Context(), sid, key, req.Quantity)
	if err != nil {
		abortWithCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(view))
}
