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

	"github.com/swiftpay/swiftpay/internal/accountdelivery"
	"github.com/swiftpay/swiftpay/internal/accountrepo"
	"github.com/swiftpay/swiftpay/internal/accountservice"
	"github.com/swiftpay/swiftpay/internal/activitydelivery"
	"github.com/swiftpay/swiftpay/internal/activityrepo"
	"github.com/swiftpay/swiftpay/internal/activityservice"
	"github.com/swiftpay/swiftpay/internal/approvaldelivery"
	"github.com/swiftpay/swiftpay/internal/approvalservice"
	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/internal/middleware"
	"github.com/swiftpay/swiftpay/internal/statsdelivery"
	"github.com/swiftpay/swiftpay/internal/statsservice"
	"github.com/swiftpay/swiftpay/internal/transactionrepo"
	"github.com/swiftpay/swiftpay/internal/transferdelivery"
	"github.com/swiftpay/swiftpay/internal/transferrepo"
	"github.com/swiftpay/swiftpay/internal/transferservice"
	"github.com/swiftpay/swiftpay/pkg/configpkg"
	"github.com/swiftpay/swiftpay/pkg/jsonresponse"
	"github.com/swiftpay/swiftpay/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
	Stats  *statsservice.Service
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

func newTokenMaker(config configpkg.Config) (tokenpkg.Maker, error) {
	if config.TokenScheme == "paseto" {
		return tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	}

	return tokenpkg.NewJWTMaker(config.TokenSymmetricKey)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountRepo := accountrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)
	transferRepo := transferrepo.NewRepoPGS(conn)
	activityRepo := activityrepo.NewRepoPGS(conn)

	tokenMaker, err := newTokenMaker(config)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	accountService := accountservice.New(accountRepo)
	transferService := transferservice.New(transferRepo, transactionRepo, accountService)
	approvalService := approvalservice.New(transferRepo, transactionRepo)
	statsService := statsservice.New(accountRepo, transactionRepo)
	activityService := activityservice.New(activityRepo)

	accountHandler := accountdelivery.NewHandler(accountService, tokenMaker, config.AccessTokenDuration)
	transferHandler := transferdelivery.NewHandler(transferService)
	approvalHandler := approvaldelivery.NewHandler(approvalService)
	statsHandler := statsdelivery.NewHandler(statsService)
	activityHandler := activitydelivery.NewHandler(activityService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("pin", accountdelivery.ValidPIN); err != nil {
			return nil, errors.New("cannot register pin validator")
		}
	}

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.GET("/", func(gctx *gin.Context) {
		gctx.JSON(http.StatusOK, jsonresponse.OK("SwiftPay server is running", nil))
	})

	engine.POST("/jwt/create", accountHandler.CreateToken)
	engine.POST("/users", accountHandler.Create)
	engine.POST("/login-user", accountHandler.Login)
	engine.GET("/admin/stats", statsHandler.Stats)

	auth := engine.Group("/").Use(middleware.Auth(tokenMaker))

	auth.GET("/logout-all-devices/:email", accountHandler.LogoutAllDevices)
	auth.GET("/user/:email", accountHandler.Get)
	auth.PATCH("/user", accountHandler.UpdateName)
	auth.GET("/users/role/:email", accountHandler.Role)

	auth.POST("/cash-out", transferHandler.CashOut)
	auth.POST("/cash-in", transferHandler.CashIn)

	auth.GET("/transactions/agent/:email", approvalHandler.AgentTransactions)
	auth.GET("/transactions/user/:email", approvalHandler.UserTransactions)

	auth.POST("/activity", activityHandler.Record)
	auth.GET("/activity", activityHandler.List)

	users := engine.Group("/").Use(
		middleware.Auth(tokenMaker),
		middleware.RequireRole(accountService, domain.RoleUser, false),
	)

	users.POST("/send-money", transferHandler.SendMoney)

	agents := engine.Group("/").Use(
		middleware.Auth(tokenMaker),
		middleware.RequireRole(accountService, domain.RoleAgent, true),
	)

	agents.GET("/cash-out/request/:email", approvalHandler.PendingCashOuts)
	agents.GET("/cash-in/request/:email", approvalHandler.PendingCashIns)
	agents.POST("/cash-out/accept", approvalHandler.AcceptCashOut)
	agents.POST("/cash-in/accept", approvalHandler.AcceptCashIn)

	// Canceling does not require the agent to be verified yet.
	anyAgents := engine.Group("/").Use(
		middleware.Auth(tokenMaker),
		middleware.RequireRole(accountService, domain.RoleAgent, false),
	)

	anyAgents.POST("/cash-out/canceled", approvalHandler.CancelCashOut)
	anyAgents.POST("/cash-in/canceled", approvalHandler.CancelCashIn)

	admins := engine.Group("/").Use(
		middleware.Auth(tokenMaker),
		middleware.RequireRole(accountService, domain.RoleAdmin, false),
	)

	admins.GET("/users", accountHandler.List)
	admins.DELETE("/users/:id", accountHandler.Delete)
	admins.GET("/transactions/admin", approvalHandler.AllTransactions)
	admins.POST("/users/block", accountHandler.Block)
	admins.POST("/users/unblock", accountHandler.Unblock)
	admins.POST("/un-valid/agent/accept", accountHandler.AcceptAgent)
	admins.POST("/un-valid/agent/cancel", accountHandler.RejectAgent)

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
		Stats:  statsService,
	}

	return server, nil
}
