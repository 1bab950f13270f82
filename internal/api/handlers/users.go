package handlers

import (
	"net/http"

	"nortetech-site/internal/services"
	"nortetech-site/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler holds the dependencies for account operations.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{service: service, validator: validate}
}

// Register godoc
// @Summary      Sign up
// @Description  Creates a candidate account.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        user body      dto.CreateUserRequest true "Account data"
// @Success      201  {object}  dto.NoticeResponse{data=dto.UserResponse} "Account created"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      409  {object}  dto.NoticeResponse "E-mail already registered"
// @Failure      500  {object}  dto.NoticeResponse "Internal Server Error"
// @Router       /cadastro/ [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "registering user", "/cadastro/")
		return
	}

	respondNotice(c, http.StatusCreated, dto.NoticeSuccess, "Cadastro realizado! Faça login para continuar.", redirectLogin, MapUserToResponse(user))
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates with e-mail and password and returns an access/refresh token pair.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        credentials body      dto.LoginRequest true "Credentials"
// @Success      200  {object}  dto.LoginResponse "Logged in"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  dto.NoticeResponse "Invalid credentials"
// @Failure      429  {object}  map[string]string "Too many attempts"
// @Router       /login/ [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	user, tokens, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "logging in", redirectLogin)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{User: MapUserToResponse(user), Tokens: *tokens})
}

// Refresh godoc
// @Summary      Refresh tokens
// @Description  Trades a refresh token for a new pair. The old refresh token stops working.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        token body      dto.RefreshRequest true "Refresh token"
// @Success      200  {object}  dto.TokenPair "New token pair"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401  {object}  dto.NoticeResponse "Unknown or expired refresh token"
// @Router       /login/refresh/ [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "refreshing token", redirectLogin)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the refresh token. Unknown tokens are ignored.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        token body      dto.LogoutRequest true "Refresh token"
// @Success      200  {object}  dto.NoticeResponse "Logged out"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Router       /logout/ [post]
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}

	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		respondError(c, err, "logging out", "/")
		return
	}
	respondNotice(c, http.StatusOK, dto.NoticeSuccess, "Você saiu da sua conta.", "/", nil)
}
