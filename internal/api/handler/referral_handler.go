package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/storefront/internal/core/ports"
)

const (
	referralCookie = "ref"
	referralMaxAge = 30 * 24 * time.Hour
)

// VisitQueue accepts referral visits for asynchronous recording.
type VisitQueue interface {
	Enqueue(code string) bool
}

// ReferralHandler serves the marketer panel and public referral tracking.
type ReferralHandler struct {
	referrals ports.ReferralService
	visits    VisitQueue
}

func NewReferralHandler(referrals ports.ReferralService, visits VisitQueue) *ReferralHandler {
	return &ReferralHandler{referrals: referrals, visits: visits}
}

// Create handles POST /v1/marketer/referral-codes.
//
// @Summary      Create a referral code
// @Description  When code is omitted one is generated in the format REF-XXXXXX.
// @Tags         marketer
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReferralRequest  true  "Referral code details"
// @Success      201   {object}  referralCodeResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/marketer/referral-codes [post]
func (h *ReferralHandler) Create(c echo.Context) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createReferralRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ref, err := h.referrals.Create(c.Request().Context(), ports.CreateReferralInput{
		OwnerID:         owner.ID,
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/v1/referrals/"+ref.Code)
	return c.JSON(http.StatusCreated, toReferralCodeResponse(ref))
}

// ListOwn handles GET /v1/marketer/referral-codes.
//
// @Summary      List own referral codes
// @Tags         marketer
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listReferralCodesResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/marketer/referral-codes [get]
func (h *ReferralHandler) ListOwn(c echo.Context) error {
	owner, err := currentUser(c)
	if err != nil {
		return err
	}

	codes, err := h.referrals.ListOwn(c.Request().Context(), owner.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListReferralCodesResponse(codes))
}

// Track handles GET /v1/referrals/:code. It validates the code, queues a
// visit and remembers the code in a cookie for checkout attribution.
//
// @Summary      Track a referral visit
// @Tags         referrals
// @Produce      json
// @Param        code  path      string  true  "Referral code"
// @Success      200   {object}  trackReferralResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/referrals/{code} [get]
func (h *ReferralHandler) Track(c echo.Context) error {
	ref, err := h.referrals.Lookup(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}

	h.visits.Enqueue(ref.Code)
	c.SetCookie(&http.Cookie{
		Name:     referralCookie,
		Value:    ref.Code,
		Path:     "/",
		MaxAge:   int(referralMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, trackReferralResponse{
		Code:            ref.Code,
		DiscountPercent: ref.DiscountPercent,
	})
}
