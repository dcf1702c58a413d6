// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/domain"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/middleware"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/errorspkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/tokenpkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/web"
)

// transactionsLimit caps the transaction history response.
const transactionsLimit = 50

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Open(ctx context.Context, owner, accountType, balance string) (domain.Account, error)
	Get(ctx context.Context, id int32) (domain.Account, error)
	List(ctx context.Context, owner string) ([]domain.Account, error)
	RecentEntries(ctx context.Context, owner string, limit int32) ([]domain.Entry, error)
	Dashboard(ctx context.Context, owner string) (domain.Dashboard, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) *Handler {
	return &Handler{service: as}
}

type data struct {
	Account domain.Account `json:"account"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type getRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get an account. Accounts of other users are
// reported as not found.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(ve)})

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	acc, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
	if acc.Owner != authPayload.Username {
		l.Warn().Str("owner", acc.Owner).Str("caller", authPayload.Username).Msg("account owner mismatch")
		gctx.JSON(http.StatusNotFound, web.Error(domain.ErrAccountNotFound))

		return
	}

	res := response{
		Data: data{acc},
	}

	gctx.JSON(http.StatusOK, res)
}

type dataAccounts struct {
	Accounts []domain.Account `json:"accounts"`
}
type responseAccounts struct {
	Data dataAccounts `json:"data,omitempty"`
}

// List handles http request to list the caller's accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	accounts, err := h.service.List(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseAccounts{
		Data: dataAccounts{accounts},
	}

	gctx.JSON(http.StatusOK, res)
}

type dataTransactions struct {
	Transactions []domain.Entry `json:"transactions"`
}
type responseTransactions struct {
	Data dataTransactions `json:"data,omitempty"`
}

// Transactions handles http request to list the caller's recent ledger
// entries across all accounts.
func (h *Handler) Transactions(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	entries, err := h.service.RecentEntries(ctx, authPayload.Username, transactionsLimit)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseTransactions{
		Data: dataTransactions{entries},
	}

	gctx.JSON(http.StatusOK, res)
}

type dataDashboard struct {
	Dashboard domain.Dashboard `json:"dashboard"`
}
type responseDashboard struct {
	Data dataDashboard `json:"data,omitempty"`
}

// Dashboard handles http request to get the caller's dashboard summary.
func (h *Handler) Dashboard(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	dashboard, err := h.service.Dashboard(ctx, authPayload.Username)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseDashboard{
		Data: dataDashboard{dashboard},
	}

	gctx.JSON(http.StatusOK, res)
}
