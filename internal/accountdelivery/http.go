// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/internal/middleware"
	"github.com/swiftpay/swiftpay/pkg/errorspkg"
	"github.com/swiftpay/swiftpay/pkg/jsonresponse"
	"github.com/swiftpay/swiftpay/pkg/tokenpkg"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, name, email, phoneNumber, nid, pin, role string) (domain.Account, error)
	Login(ctx context.Context, email, pin, deviceID string) (domain.Account, error)
	CheckPIN(ctx context.Context, email, pin string) (domain.Account, error)
	LogoutAllDevices(ctx context.Context, email string) error
	Get(ctx context.Context, email string) (domain.Account, error)
	GetByPhone(ctx context.Context, phoneNumber string) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Delete(ctx context.Context, id int64) error
	UpdateName(ctx context.Context, id int64, name string) (domain.Account, error)
	SetBlocked(ctx context.Context, email string, blocked bool) (domain.Account, error)
	SetAgentVerified(ctx context.Context, phoneNumber string, verified bool) (domain.Account, error)
	Role(ctx context.Context, email string) (string, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service       Service
	tokenMaker    tokenpkg.Maker
	tokenDuration time.Duration
}

// NewHandler returns account handler.
func NewHandler(as Service, tm tokenpkg.Maker, tokenDuration time.Duration) *Handler {
	return &Handler{
		service:       as,
		tokenMaker:    tm,
		tokenDuration: tokenDuration,
	}
}

type createTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

// CreateToken handles http request to issue a signed access token.
func (h *Handler) CreateToken(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createTokenRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	token, _, err := h.tokenMaker.CreateToken(req.Email, req.Role, h.tokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, gin.H{"token": token})
}

type createRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	NID         string `json:"nid" binding:"required"`
	PIN         string `json:"pin" binding:"required,pin"`
	Role        string `json:"role" binding:"required,oneof=user agent admin"`
}

// Create handles http request to register an account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	account, err := h.service.Create(ctx, req.Name, req.Email, req.PhoneNumber, req.NID, req.PIN, req.Role)
	if err != nil {
		switch err {
		case domain.ErrEmailAlreadyExists,
			domain.ErrPhoneAlreadyExists,
			domain.ErrNIDAlreadyExists:
			gctx.JSON(http.StatusOK, jsonresponse.Fail(err.Error()))
			return
		case domain.ErrInvalidPINFormat:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Fail(err.Error()))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK("User Account Created successfully", account))
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	PIN      string `json:"pin" binding:"required"`
	DeviceID string `json:"deviceId"`
}

type loginResponse struct {
	Status      bool            `json:"status"`
	Message     string          `json:"message"`
	User        *domain.Account `json:"user,omitempty"`
	DeviceID    string          `json:"deviceId"`
	DeviceLogin bool            `json:"deviceLogin,omitempty"`
}

// Login handles http login request and returns the account on success.
// All credential failures are soft responses for client compatibility.
func (h *Handler) Login(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req loginRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	account, err := h.service.Login(ctx, req.Email, req.PIN, req.DeviceID)
	if err != nil {
		switch err {
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusOK, loginResponse{Message: "Invalid Credentials", DeviceID: req.DeviceID})
			return
		case domain.ErrInvalidPIN:
			gctx.JSON(http.StatusOK, loginResponse{Message: "Invalid PIN", DeviceID: req.DeviceID})
			return
		case domain.ErrAccountBlocked, domain.ErrAgentNotVerified:
			gctx.JSON(http.StatusOK, loginResponse{Message: err.Error(), DeviceID: req.DeviceID})
			return
		case domain.ErrDeviceConflict:
			gctx.JSON(http.StatusOK, loginResponse{
				Message:     err.Error(),
				DeviceID:    req.DeviceID,
				DeviceLogin: true,
			})

			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, loginResponse{
		Status:   true,
		Message:  "Successfully Login",
		User:     &account,
		DeviceID: req.DeviceID,
	})
}

// LogoutAllDevices handles http request to clear the account's device binding.
func (h *Handler) LogoutAllDevices(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	email := gctx.Param("email")

	if err := h.service.LogoutAllDevices(ctx, email); err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusOK, jsonresponse.Fail(err.Error()))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK("Successfully Logged Out from all devices", nil))
}

// List handles http request to list all accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	accounts, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK("", accounts))
}

// Get handles http request to fetch one account by email.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	account, err := h.service.Get(ctx, gctx.Param("email"))
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusOK, jsonresponse.Fail(err.Error()))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK("", account))
}

type updateNameRequest struct {
	ID   int64  `json:"id" binding:"required,min=1"`
	Name string `json:"name" binding:"required"`
}

// UpdateName handles http request to change the account holder name.
func (h *Handler) UpdateName(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req updateNameRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	account, err := h.service.UpdateName(ctx, req.ID, req.Name)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusOK, jsonresponse.Fail(err.Error()))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK("", account))
}

// Delete handles http request to remove an account.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, err := strconv.ParseInt(gctx.Param("id"), 10, 64)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK("User deleted successfully", nil))
}

// Role handles http request to look up the caller's own role.
func (h *Handler) Role(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	email := gctx.Param("email")

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
	if authPayload.Email != email {
		gctx.JSON(http.StatusForbidden, jsonresponse.Error(middleware.ErrForbidden))
		return
	}

	role, err := h.service.Role(ctx, email)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusOK, jsonresponse.Fail(err.Error()))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK("", role))
}

type blockRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Block handles http request to block an account.
func (h *Handler) Block(gctx *gin.Context) {
	h.setBlocked(gctx, true, "User blocked successfully")
}

// Unblock handles http request to unblock an account.
func (h *Handler) Unblock(gctx *gin.Context) {
	h.setBlocked(gctx, false, "User unblocked successfully")
}

func (h *Handler) setBlocked(gctx *gin.Context, blocked bool, message string) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req blockRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	if _, err := h.service.SetBlocked(ctx, req.Email, blocked); err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusOK, jsonresponse.Fail(err.Error()))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK(message, nil))
}

type agentVerifyRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// AcceptAgent handles http request to verify a pending agent.
func (h *Handler) AcceptAgent(gctx *gin.Context) {
	h.setAgentVerified(gctx, true, "Agent verified successfully")
}

// RejectAgent handles http request to reject a pending agent.
func (h *Handler) RejectAgent(gctx *gin.Context) {
	h.setAgentVerified(gctx, false, "Agent verification rejected")
}

func (h *Handler) setAgentVerified(gctx *gin.Context, verified bool, message string) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req agentVerifyRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	if _, err := h.service.SetAgentVerified(ctx, req.PhoneNumber, verified); err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusOK, jsonresponse.Fail(err.Error()))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, jsonresponse.OK(message, nil))
}
