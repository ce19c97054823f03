package api

import (
	"errors"
	"net/http"

	"machine-rental/internal/domain/user"
	reqdto "machine-rental/internal/handler/dto/request"
	resdto "machine-rental/internal/handler/dto/response"
	"machine-rental/internal/handler/middleware"
	"machine-rental/internal/pkg/config"
	"machine-rental/internal/pkg/cookie"
	"machine-rental/internal/usecase"
	"machine-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	userQueries queries.UserQueries
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, userQueries queries.UserQueries, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		userQueries: userQueries,
		cookieCfg:   cookieCfg,
	}
}

// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.authUseCase.Register(c.Request.Context(), usecase.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email is already registered",
			})
		case errors.Is(err, user.ErrInvalidEmail),
			errors.Is(err, user.ErrInvalidRole),
			errors.Is(err, user.ErrPasswordTooWeak),
			errors.Is(err, user.ErrEmptyName):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAuthorizedUser(view))
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, view, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAuthenticationFailed), errors.Is(err, usecase.ErrUserInactive):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Email or password is incorrect",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, token, h.authUseCase.TokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{
		Token: token,
		User:  *resdto.FromAuthorizedUser(view),
	})
}

// @Summary Logout
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}

// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.userQueries.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUser(view))
}
