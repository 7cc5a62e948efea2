// File: internal/handler/user.go
package handler

import (
	"net/http"

	"jdgk-cms/internal/api"
	"jdgk-cms/internal/database"
	"jdgk-cms/internal/model"
	"jdgk-cms/internal/service"
	"jdgk-cms/internal/store"

	"github.com/labstack/echo/v4"
)

var hashPassword = service.HashPassword

// @Summary     List users
// @Description 不回傳密碼雜湊
// @Tags        users
// @Produce     json
// @Param       role  query string false "admin | user"
// @Param       skip  query int    false "略過筆數" default(0)
// @Param       limit query int    false "回傳筆數上限" default(100)
// @Success     200 {array}  api.UserResponse
// @Failure     400 {object} api.HTTPError
// @Router      /users [get]
// @Router      /admin/users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		opts, err := parseListOptions(c)
		if err != nil {
			return respondError(c, err)
		}
		users, err := store.ListUsers(c.Request().Context(), db, store.UserFilter{
			Role: queryValue[model.Role](c, "role"),
		}, opts)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponses(users))
	}
}

// @Summary     Create a new user
// @Description Email 會轉為小寫；重複 Email 回 409
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.HTTPError
// @Failure     409  {object} api.HTTPError
// @Failure     500  {object} api.HTTPError
// @Router      /admin/users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return respondError(c, err)
		}
		u := req.Model()
		u.HashedPassword = hash

		user, err := store.CreateUser(c.Request().Context(), db, u)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id  path     string true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     404 {object} api.HTTPError "使用者不存在"
// @Failure     500 {object} api.HTTPError "伺服器錯誤"
// @Router      /admin/users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := store.GetUserByID(c.Request().Context(), db, c.Param("id"))
		if err != nil {
			return respondError(c, err)
		}
		if user == nil {
			return notFound(c, "user")
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// UpdateUserHandler 部分更新；提供 password 時重新雜湊
// @Summary     Update a user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     string                true "使用者 ID"
// @Param       body body     api.UpdateUserRequest true "要更新的欄位"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.HTTPError
// @Failure     404  {object} api.HTTPError
// @Failure     409  {object} api.HTTPError
// @Router      /admin/users/{id} [put]
// @Router      /admin/users/{id} [patch]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateUserRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}

		// 在交易外先雜湊，避免持有列鎖時執行 bcrypt
		var hash string
		if req.Password.Set {
			h, err := hashPassword(req.Password.Value)
			if err != nil {
				return respondError(c, err)
			}
			hash = h
		}

		user, err := store.UpdateUser(c.Request().Context(), db, c.Param("id"), func(u *model.User) {
			req.ApplyTo(u)
			if hash != "" {
				u.HashedPassword = hash
			}
		})
		if err != nil {
			return respondError(c, err)
		}
		if user == nil {
			return notFound(c, "user")
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Change a user's role
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     string                    true "使用者 ID"
// @Param       body body     api.UpdateUserRoleRequest true "新角色"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.HTTPError
// @Failure     404  {object} api.HTTPError
// @Router      /admin/users/{id}/role [put]
func UpdateUserRoleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateUserRoleRequest
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}
		user, err := store.UpdateUser(c.Request().Context(), db, c.Param("id"), func(u *model.User) {
			u.Role = req.Role
		})
		if err != nil {
			return respondError(c, err)
		}
		if user == nil {
			return notFound(c, "user")
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Delete a user
// @Description 該使用者撰寫的文章 author_id 會保留
// @Tags        users
// @Produce     json
// @Param       id  path     string true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     404 {object} api.HTTPError
// @Router      /admin/users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := store.DeleteUser(c.Request().Context(), db, c.Param("id"))
		if err != nil {
			return respondError(c, err)
		}
		if user == nil {
			return notFound(c, "user")
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
