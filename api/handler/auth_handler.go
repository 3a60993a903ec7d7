package handler

import (
	"errors"
	"net/http"
	"time"

	"foundercompass/api/middleware"
	"foundercompass/internal/dto"
	"foundercompass/internal/entity"
	"foundercompass/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Service       *service.AuthService
	Validate      *validator.Validate
	CookieDomain  string
	SecureCookies bool
}

func NewAuthHandler(svc *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		Service:       svc,
		Validate:      validate,
		SecureCookies: true,
	}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.SignupInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		CompanySize: entity.CompanySize(req.CompanySize),
	}
	user, err := h.Service.Signup(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.SignupResponse{
		Message: "User created successfully",
		UserID:  user.ID.String(),
	})
}

// Login accepts the OAuth2 password form fields the frontend submits.
func (h *AuthHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")
	result, err := h.Service.Login(c.Request().Context(), username, password)
	if err != nil {
		return writeServiceError(c, err)
	}
	h.setAccessCookie(c, result.AccessToken, result.ExpiresIn)
	return c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearAccessCookie(c)
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("could not validate credentials"))
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *AuthHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

// The cookie carries the bearer prefix so browser clients and the
// Authorization header share one token format.
func (h *AuthHandler) setAccessCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "Bearer " + token,
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AuthHandler) clearAccessCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteNoneMode,
	})
}
