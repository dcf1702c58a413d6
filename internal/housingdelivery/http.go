// Package housingdelivery manages delivery layer of housing offers and
// mortgage applications.
package housingdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/middleware"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/amortpkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/errorspkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/tokenpkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/web"
)

// monthsPerYear converts mortgage terms to the amortization period unit.
const monthsPerYear = 12

// Service provides service layer interface needed by housing delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package housingdelivery
type Service interface {
	List(ctx context.Context) ([]domain.HousingOffer, error)
	Get(ctx context.Context, slug string) (domain.HousingOffer, error)
	Apply(ctx context.Context, username string, offerID int32, arg domain.ApplyMortgageParams) (domain.MortgageApplication, error)
	ListApplications(ctx context.Context, username string) ([]domain.MortgageApplication, error)
}

// Handler facilitates housing delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns housing handler.
func NewHandler(hs Service) *Handler {
	return &Handler{service: hs}
}

type dataOffers struct {
	Offers []domain.HousingOffer `json:"offers"`
}
type responseOffers struct {
	Data dataOffers `json:"data,omitempty"`
}

// List handles http request to list the housing offer catalog.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	offers, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseOffers{
		Data: dataOffers{offers},
	}

	gctx.JSON(http.StatusOK, res)
}

type getRequest struct {
	Slug string `uri:"slug" binding:"required"`
}

type dataOffer struct {
	Offer domain.HousingOffer `json:"offer"`
}
type responseOffer struct {
	Data dataOffer `json:"data,omitempty"`
}

// Get handles http request to get a housing offer by slug.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	offer, err := h.service.Get(ctx, req.Slug)
	if err != nil {
		if err == domain.ErrHousingOfferNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseOffer{
		Data: dataOffer{offer},
	}

	gctx.JSON(http.StatusOK, res)
}

type applyURI struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

type applyRequest struct {
	DownPayment      string `json:"downPayment" binding:"required"`
	TermYears        int32  `json:"termYears" binding:"required,min=1"`
	EmploymentStatus string `json:"employmentStatus" binding:"required"`
	AnnualIncome     string `json:"annualIncome"`
}

type applicationResponse struct {
	Message     string                     `json:"message"`
	Application domain.MortgageApplication `json:"application"`
}

// Apply handles http request to submit a mortgage application.
func (h *Handler) Apply(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri applyURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	var req applyRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	arg := domain.ApplyMortgageParams{
		DownPayment:      req.DownPayment,
		TermYears:        req.TermYears,
		EmploymentStatus: req.EmploymentStatus,
		AnnualIncome:     req.AnnualIncome,
	}

	application, err := h.service.Apply(ctx, authPayload.Username, uri.ID, arg)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrHousingOfferNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))

			return
		case domain.ErrInvalidAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := applicationResponse{
		Message:     "Mortgage application submitted successfully! Our team will contact you within 3-5 business days.",
		Application: application,
	}

	gctx.JSON(http.StatusCreated, res)
}

type dataApplications struct {
	Applications []domain.MortgageApplication `json:"applications"`
}
type responseApplications struct {
	Data dataApplications `json:"data,omitempty"`
}

// MyApplications handles http request to list the caller's mortgage
// applications.
func (h *Handler) MyApplications(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	applications, err := h.service.ListApplications(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseApplications{
		Data: dataApplications{applications},
	}

	gctx.JSON(http.StatusOK, res)
}

type calculateRequest struct {
	Principal string `form:"principal" binding:"required"`
	APR       string `form:"apr" binding:"required"`
	TermYears int    `form:"termYears" binding:"required"`
}

type calculateResponse struct {
	MonthlyPayment string `json:"monthlyPayment"`
	TotalPayment   string `json:"totalPayment"`
	TotalInterest  string `json:"totalInterest"`
	Principal      string `json:"principal"`
	APR            string `json:"apr"`
	TermMonths     int    `json:"termMonths"`
}

// Calculate handles http request to compute an amortized mortgage payment.
// The term arrives in years and is converted to months.
func (h *Handler) Calculate(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	var req calculateRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	plan, err := amortpkg.Amortize(req.Principal, req.APR, req.TermYears*monthsPerYear)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	res := calculateResponse{
		MonthlyPayment: plan.MonthlyPayment.StringFixed(2),
		TotalPayment:   plan.TotalPayment.StringFixed(2),
		TotalInterest:  plan.TotalInterest.StringFixed(2),
		Principal:      plan.Principal.StringFixed(2),
		APR:            plan.APR.String(),
		TermMonths:     plan.TermMonths,
	}

	gctx.JSON(http.StatusOK, res)
}
