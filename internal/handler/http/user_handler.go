package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firaol-d/clubhub/internal/handler/http/dto"
	"github.com/firaol-d/clubhub/internal/handler/http/middleware"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

// UserHandler serves account and session endpoints.
type UserHandler struct {
	userUseCase usecasecontract.IUserUseCase
	logger      usecasecontract.IAppLogger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userUseCase usecasecontract.IUserUseCase, logger usecasecontract.IAppLogger) *UserHandler {
	return &UserHandler{userUseCase: userUseCase, logger: logger}
}

// Register handles POST /auth/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, refreshToken, err := h.userUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// A failed login never reveals which part was wrong.
		ErrorHandler(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// RefreshToken handles POST /auth/refresh.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	accessToken, refreshToken, err := h.userUseCase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout handles POST /auth/logout.
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUseCase.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "invalid refresh token")
		return
	}
	MessageHandler(c, http.StatusOK, "logged out")
}

// Me handles GET /me for the authenticated user.
func (h *UserHandler) Me(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.userUseCase.GetUserByID(c.Request.Context(), identity.ID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// GetUser handles GET /users/:userID.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUseCase.GetUserByID(c.Request.Context(), c.Param("userID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateProfile handles PATCH /me.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["firstname"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["lastname"] = *req.LastName
	}
	if len(updates) == 0 {
		ErrorHandler(c, http.StatusBadRequest, "no fields to update")
		return
	}

	user, err := h.userUseCase.UpdateProfile(c.Request.Context(), identity.ID, updates)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}
