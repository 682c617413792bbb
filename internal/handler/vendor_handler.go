package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"vendorhub/internal/auth"
	apperrors "vendorhub/internal/errors"
	"vendorhub/internal/response"
	"vendorhub/internal/service"
)

const maxListLimit = 20

// VendorHandler handles vendor endpoints. Every response is HTTP 200;
// failure rides in the envelope code.
type VendorHandler struct {
	vendorService service.VendorService
	tokens        auth.TokenValidator
	tokenHeader   string
}

// NewVendorHandler creates a new vendor handler.
func NewVendorHandler(vendorService service.VendorService, tokens auth.TokenValidator, tokenHeader string) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
		tokens:        tokens,
		tokenHeader:   tokenHeader,
	}
}

// VendorRequest represents a vendor add/update body.
type VendorRequest struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Email       *string `json:"email"`
	Website     *string `json:"website"`
	Description *string `json:"description"`
}

// checkToken enforces the token gate shared by all vendor endpoints. It
// returns false after writing the invalid-token envelope; when the
// validator hands back a refreshed token it is echoed on the response
// header so clients can rotate.
func (h *VendorHandler) checkToken(c echo.Context) bool {
	token := c.Request().Header.Get(h.tokenHeader)
	if token == "" {
		_ = c.JSON(http.StatusOK, response.Failure(response.MsgInvalidToken))
		return false
	}

	res, err := h.tokens.Validate(c.Request().Context(), token)
	if err != nil || res == nil {
		_ = c.JSON(http.StatusOK, response.Failure(response.MsgInvalidToken))
		return false
	}
	if res.RefreshedToken != "" {
		c.Response().Header().Set(h.tokenHeader, res.RefreshedToken)
	}
	return true
}

func toInput(req VendorRequest) service.VendorInput {
	return service.VendorInput{
		Name:        req.Name,
		Image:       req.Image,
		Email:       req.Email,
		Website:     req.Website,
		Description: req.Description,
	}
}

// Add godoc
// @Summary Register a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param request body VendorRequest true "Vendor data"
// @Success 200 {object} response.Envelope
// @Router /vendor/add [post]
func (h *VendorHandler) Add(c echo.Context) error {
	if !h.checkToken(c) {
		return nil
	}

	var req VendorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, response.Failure(response.MsgUnableToProcess))
	}

	if err := h.vendorService.Add(c.Request().Context(), toInput(req)); err != nil {
		return c.JSON(http.StatusOK, apperrors.ToEnvelope(err))
	}
	return c.JSON(http.StatusOK, response.Success(response.MsgVendorAdded))
}

// Update godoc
// @Summary Update a vendor by email
// @Tags vendors
// @Accept json
// @Produce json
// @Param request body VendorRequest true "Vendor data"
// @Success 200 {object} response.Envelope
// @Router /vendor/update [put]
func (h *VendorHandler) Update(c echo.Context) error {
	if !h.checkToken(c) {
		return nil
	}

	var req VendorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, response.Failure(response.MsgUnableToProcess))
	}

	if err := h.vendorService.Update(c.Request().Context(), toInput(req)); err != nil {
		return c.JSON(http.StatusOK, apperrors.ToEnvelope(err))
	}
	return c.JSON(http.StatusOK, response.Success(response.MsgVendorAdded))
}

// List godoc
// @Summary List active vendors
// @Tags vendors
// @Produce json
// @Param skip query int false "Rows to skip"
// @Success 200 {object} response.Envelope
// @Router /vendor/list [get]
func (h *VendorHandler) List(c echo.Context) error {
	if !h.checkToken(c) {
		return nil
	}

	skip := intOrDefault(c.QueryParam("skip"), 0)
	if skip < 0 {
		skip = 0
	}
	// TODO: read limit from its own query param once the client contract is settled
	limit := intOrDefault(c.QueryParam("skip"), maxListLimit)
	// A negative limit would strip the store's LIMIT clause entirely.
	if limit < 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	vendors, err := h.vendorService.List(c.Request().Context(), skip, limit)
	if err != nil {
		return c.JSON(http.StatusOK, response.Failure(err.Error()))
	}
	return c.JSON(http.StatusOK, response.Data(vendors))
}

// intOrDefault coerces a request parameter to int, substituting the
// default when the parameter is absent or unparseable.
func intOrDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
