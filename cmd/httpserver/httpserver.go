// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/arinzepaschal791-code/stonebridgetrust/internal/accountdelivery"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/accountrepo"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/accountservice"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/entryrepo"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/housingdelivery"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/housingrepo"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/housingservice"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/loandelivery"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/loanrepo"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/loanservice"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/middleware"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/sessiondelivery"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/sessionrepo"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/sessionservice"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/transferdelivery"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/transferrepo"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/transferservice"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/userdelivery"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/userrepo"
	"github.com/arinzepaschal791-code/stonebridgetrust/internal/userservice"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/configpkg"
	"github.com/arinzepaschal791-code/stonebridgetrust/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	entryRepo := entryrepo.NewRepoPGS(conn)
	transferRepo := transferrepo.NewRepoPGS(conn)
	sessionRepo := sessionrepo.NewRepoPGS(conn)
	loanRepo := loanrepo.NewRepoPGS(conn)
	housingRepo := housingrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	accountService := accountservice.New(accountRepo, entryRepo)
	userService := userservice.New(userRepo, accountService)
	transferService := transferservice.New(transferRepo, accountService)
	loanService := loanservice.New(loanRepo)
	housingService := housingservice.New(housingRepo)

	sessionService, err := sessionservice.New(sessionRepo, config, tokenMaker)
	if err != nil {
		return nil, errors.New("cannot initialize session service")
	}

	userHandler := userdelivery.NewHandler(userService, sessionService)
	accountHandler := accountdelivery.NewHandler(accountService)
	transferHandler := transferdelivery.NewHandler(transferService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)
	loanHandler := loandelivery.NewHandler(loanService)
	housingHandler := housingdelivery.NewHandler(housingService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)
	engine.POST("/sessions", sessionHandler.RenewAccessToken)

	engine.GET("/loans", loanHandler.List)
	engine.GET("/loans/:slug", loanHandler.Get)
	engine.GET("/calculate-loan", loanHandler.Calculate)

	engine.GET("/housing", housingHandler.List)
	engine.GET("/housing/:slug", housingHandler.Get)
	engine.GET("/calculate-mortgage", housingHandler.Calculate)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.GET("/accounts", accountHandler.List)
	authRoutes.GET("/accounts/:id", accountHandler.Get)
	authRoutes.GET("/transactions", accountHandler.Transactions)
	authRoutes.GET("/dashboard", accountHandler.Dashboard)

	authRoutes.POST("/transfer", transferHandler.Create)

	authRoutes.POST("/loans/:id/apply", loanHandler.Apply)
	authRoutes.GET("/my-loan-applications", loanHandler.MyApplications)

	authRoutes.POST("/housing/:id/apply", housingHandler.Apply)
	authRoutes.GET("/my-mortgage-applications", housingHandler.MyApplications)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("accounttype", accountdelivery.ValidAccountType)
		if err != nil {
			return nil, errors.New("cannot register account type validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
