package handlers

import (
	"errors"
	"net/http"
	"time"

	request "instacar/internal/adapter/http/dto/request"
	response "instacar/internal/adapter/http/dto/response"
	"instacar/internal/usecase"
	"instacar/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles the public, token-authorized quote endpoints.
//
// Malformed tokens are rejected here via the usecase's format check
// before any store access happens.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote handles the intake flow: it issues the quote, its display
// id and its capability token, and returns the token exactly once.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedQuote(q, time.Now()))
}

// Lookup re-derives the access token from email + display id. The
// response never reveals whether the email or the id mismatched.
func (h *QuoteHandler) Lookup(c *gin.Context) {
	var payload request.LookupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	tok, err := h.usecase.Lookup(c.Request.Context(), c.ClientIP(), payload.Email, payload.DisplayID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LookupResponse{Token: tok})
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q, time.Now()))
}

func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	var payload request.CancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Cancel(c.Request.Context(), c.Param("token"), payload.Reason, payload.Note)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q, time.Now()))
}

func (h *QuoteHandler) SchedulePickup(c *gin.Context) {
	var payload request.SchedulePickupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PICKUP_DATE", "Invalid pickup date, expected YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q, err := h.usecase.SchedulePickup(c.Request.Context(), c.Param("token"), input)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q, time.Now()))
}

func (h *QuoteHandler) Reschedule(c *gin.Context) {
	var payload request.RescheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PICKUP_DATE", "Invalid pickup date, expected YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q, err := h.usecase.Reschedule(c.Request.Context(), c.Param("token"), input)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q, time.Now()))
}

func (h *QuoteHandler) UpdateContact(c *gin.Context) {
	var payload request.UpdateContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.UpdateContact(c.Request.Context(), c.Param("token"), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q, time.Now()))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid access token", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidVehicle),
		errors.Is(err, usecase.ErrInvalidBasePrice),
		errors.Is(err, usecase.ErrInvalidLookupInput),
		errors.Is(err, usecase.ErrInvalidCancelReason),
		errors.Is(err, usecase.ErrInvalidPickupDetails),
		errors.Is(err, usecase.ErrInvalidContact),
		errors.Is(err, usecase.ErrInvalidAdjustment),
		errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPickupDate):
		return pkg.NewDomainErrorSimple("INVALID_PICKUP_DATE", "Pickup date outside the allowed window", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainErrorSimple("QUOTE_EXPIRED", "Quote has expired", http.StatusGone)
	case errors.Is(err, usecase.ErrStateConflict):
		return pkg.NewDomainErrorSimple("STATE_CONFLICT", "Quote state does not allow this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Admin identity required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrRateLimited):
		return pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many attempts, try again later", http.StatusTooManyRequests)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
