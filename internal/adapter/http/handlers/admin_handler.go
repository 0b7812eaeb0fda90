package handlers

import (
	"net/http"
	"time"

	request "instacar/internal/adapter/http/dto/request"
	response "instacar/internal/adapter/http/dto/response"
	"instacar/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminIDContextKey is where the auth middleware stores the admin
// identity for the handlers below.
const AdminIDContextKey = "admin_id"

// AdminQuoteHandler handles the admin-only quote endpoints. The routes
// layer guards them with the admin bearer-token middleware; here we
// only pick up the identity it validated.

type AdminQuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewAdminQuoteHandler(uc usecase.IQuoteUseCase) *AdminQuoteHandler {
	return &AdminQuoteHandler{usecase: uc}
}

func (h *AdminQuoteHandler) ApproveQuote(c *gin.Context) {
	q, err := h.usecase.Approve(c.Request.Context(), c.GetString(AdminIDContextKey), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdminQuote(q, time.Now()))
}

func (h *AdminQuoteHandler) CompleteQuote(c *gin.Context) {
	var payload request.CompleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Complete(c.Request.Context(), c.GetString(AdminIDContextKey), c.Param("id"), payload.Note)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdminQuote(q, time.Now()))
}

func (h *AdminQuoteHandler) AdjustPrice(c *gin.Context) {
	var payload request.AdjustPriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.AdjustPrice(c.Request.Context(), c.GetString(AdminIDContextKey), c.Param("id"), payload.Key, payload.Amount, payload.Note)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdminQuote(q, time.Now()))
}

func (h *AdminQuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdminQuote(q, time.Now()))
}
