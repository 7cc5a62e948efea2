// File: internal/handler/crud.go
package handler

import (
	"context"
	"net/http"

	"jdgk-cms/internal/database"
	"jdgk-cms/internal/store"

	"github.com/labstack/echo/v4"
)

// 以下為各資源共用的 CRUD handler，資源檔只負責組合 api 與 store 的函式

func listHandler[F, T any](
	db database.DB,
	filter func(echo.Context) (F, error),
	list func(context.Context, database.Querier, F, store.ListOptions) ([]T, error),
) echo.HandlerFunc {
	return func(c echo.Context) error {
		opts, err := parseListOptions(c)
		if err != nil {
			return respondError(c, err)
		}
		f, err := filter(c)
		if err != nil {
			return respondError(c, err)
		}
		items, err := list(c.Request().Context(), db, f, opts)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	}
}

// getHandler 以路徑參數 param 查詢單筆
func getHandler[T any](
	db database.DB,
	entity, param string,
	get func(context.Context, database.Querier, string) (*T, error),
) echo.HandlerFunc {
	return func(c echo.Context) error {
		v, err := get(c.Request().Context(), db, c.Param(param))
		if err != nil {
			return respondError(c, err)
		}
		if v == nil {
			return notFound(c, entity)
		}
		return c.JSON(http.StatusOK, v)
	}
}

func createHandler[R, T any](
	db database.DB,
	toModel func(R) *T,
	create func(context.Context, database.Querier, *T) (*T, error),
) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req R
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}
		v, err := create(c.Request().Context(), db, toModel(req))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusCreated, v)
	}
}

// updateHandler 只合併 body 內出現的欄位；PUT 與 PATCH 共用
func updateHandler[R, T any](
	db database.DB,
	entity string,
	apply func(R, *T),
	update func(context.Context, database.DB, string, func(*T)) (*T, error),
) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req R
		if err := bind(c, &req); err != nil {
			return respondError(c, err)
		}
		v, err := update(c.Request().Context(), db, c.Param("id"), func(cur *T) { apply(req, cur) })
		if err != nil {
			return respondError(c, err)
		}
		if v == nil {
			return notFound(c, entity)
		}
		return c.JSON(http.StatusOK, v)
	}
}

// deleteHandler 回傳刪除前的紀錄
func deleteHandler[T any](
	db database.DB,
	entity string,
	del func(context.Context, database.Querier, string) (*T, error),
) echo.HandlerFunc {
	return func(c echo.Context) error {
		v, err := del(c.Request().Context(), db, c.Param("id"))
		if err != nil {
			return respondError(c, err)
		}
		if v == nil {
			return notFound(c, entity)
		}
		return c.JSON(http.StatusOK, v)
	}
}
