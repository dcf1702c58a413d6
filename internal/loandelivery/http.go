// Package loandelivery manages delivery layer of loan offers and
// loan applications.
package loandelivery

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

// Service provides service layer interface needed by loan delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package loandelivery
type Service interface {
	List(ctx context.Context) ([]domain.Loan, error)
	Get(ctx context.Context, slug string) (domain.Loan, error)
	Apply(ctx context.Context, username string, loanID int32, arg domain.ApplyLoanParams) (domain.LoanApplication, error)
	ListApplications(ctx context.Context, username string) ([]domain.LoanApplication, error)
}

// Handler facilitates loan delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns loan handler.
func NewHandler(ls Service) *Handler {
	return &Handler{service: ls}
}

type dataLoans struct {
	Loans []domain.Loan `json:"loans"`
}
type responseLoans struct {
	Data dataLoans `json:"data,omitempty"`
}

// List handles http request to list the loan offer catalog.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	loans, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseLoans{
		Data: dataLoans{loans},
	}

	gctx.JSON(http.StatusOK, res)
}

type getRequest struct {
	Slug string `uri:"slug" binding:"required"`
}

type dataLoan struct {
	Loan domain.Loan `json:"loan"`
}
type responseLoan struct {
	Data dataLoan `json:"data,omitempty"`
}

// Get handles http request to get a loan offer by slug.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	loan, err := h.service.Get(ctx, req.Slug)
	if err != nil {
		if err == domain.ErrLoanNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseLoan{
		Data: dataLoan{loan},
	}

	gctx.JSON(http.StatusOK, res)
}

type applyURI struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

type applyRequest struct {
	RequestedAmount  string `json:"requestedAmount" binding:"required"`
	TermMonths       int32  `json:"termMonths" binding:"required,min=1"`
	EmploymentStatus string `json:"employmentStatus" binding:"required"`
	AnnualIncome     string `json:"annualIncome"`
	Purpose          string `json:"purpose"`
}

type applicationResponse struct {
	Message     string                 `json:"message"`
	Application domain.LoanApplication `json:"application"`
}

// Apply handles http request to submit a loan application.
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

	arg := domain.ApplyLoanParams{
		RequestedAmount:  req.RequestedAmount,
		TermMonths:       req.TermMonths,
		EmploymentStatus: req.EmploymentStatus,
		AnnualIncome:     req.AnnualIncome,
		Purpose:          req.Purpose,
	}

	application, err := h.service.Apply(ctx, authPayload.Username, uri.ID, arg)
	if err != nil {
		l.Info().Err(err).Send()

		var oorErr *domain.OutOfRangeError
		if errors.As(err, &oorErr) {
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		switch err {
		case domain.ErrLoanNotFound:
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
		Message:     "Loan application submitted successfully! We will review and get back to you within 2-3 business days.",
		Application: application,
	}

	gctx.JSON(http.StatusCreated, res)
}

type dataApplications struct {
	Applications []domain.LoanApplication `json:"applications"`
}
type responseApplications struct {
	Data dataApplications `json:"data,omitempty"`
}

// MyApplications handles http request to list the caller's loan applications.
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
	Principal  string `form:"principal" binding:"required"`
	APR        string `form:"apr" binding:"required"`
	TermMonths int    `form:"termMonths" binding:"required"`
}

type calculateResponse struct {
	MonthlyPayment string `json:"monthlyPayment"`
	TotalPayment   string `json:"totalPayment"`
	TotalInterest  string `json:"totalInterest"`
	Principal      string `json:"principal"`
	APR            string `json:"apr"`
	TermMonths     int    `json:"termMonths"`
}

// Calculate handles http request to compute an amortized monthly payment.
func (h *Handler) Calculate(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	var req calculateRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	plan, err := amortpkg.Amortize(req.Principal, req.APR, req.TermMonths)
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
