// File: internal/handler/auth.go
package handler

import (
	"errors"
	"net/http"
	"time"

	"jdgk-cms/internal/api"
	"jdgk-cms/internal/database"
	"jdgk-cms/internal/middleware"
	"jdgk-cms/internal/service"
	"jdgk-cms/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      json
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.HTTPError
// @Failure     401  {object} api.HTTPError
// @Failure     500  {object} api.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, secret string, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		// 撈使用者資料；查無帳號也要跑一次密碼比對
		user, err := store.GetUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			return respondError(c, err)
		}
		authUser, err := authenticateUser(user, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return c.JSON(http.StatusUnauthorized, api.HTTPError{Message: "invalid credentials"})
			}
			return respondError(c, err)
		}

		// 發行存取令牌
		token, expiresAt, err := issueAccessToken(*authUser, secret, ttl)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt,
			User:        api.NewUserResponse(authUser),
		})
	}
}

// SessionHandler 回傳目前登入的使用者，需經過 RequireAuth
// @Summary     Current session
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.HTTPError
// @Security    ApiKeyAuth
// @Router      /auth/session [get]
func SessionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.HTTPError{Message: "missing session"})
		}
		user, err := store.GetUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return respondError(c, err)
		}
		if user == nil {
			return c.JSON(http.StatusUnauthorized, api.HTTPError{Message: "user no longer exists"})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
