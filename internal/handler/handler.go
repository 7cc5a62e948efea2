// File: internal/handler/handler.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"jdgk-cms/internal/api"
	"jdgk-cms/internal/store"

	"github.com/labstack/echo/v4"
)

// 測試可替換
var timeNow = time.Now

// respondError 依錯誤種類決定狀態碼；非預期錯誤記 log 後回 500
func respondError(c echo.Context, err error) error {
	var (
		verr     *api.ValidationError
		conflict *store.ConflictError
		he       *echo.HTTPError
	)
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, api.HTTPError{Message: verr.Error(), Fields: verr.Fields})
	case errors.As(err, &conflict):
		return c.JSON(http.StatusConflict, api.HTTPError{Message: conflict.Error()})
	case errors.As(err, &he):
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		return c.JSON(he.Code, api.HTTPError{Message: msg})
	}
	slog.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, api.HTTPError{Message: "internal server error"})
}

func notFound(c echo.Context, entity string) error {
	return c.JSON(http.StatusNotFound, api.HTTPError{Message: entity + " not found"})
}

// bind 解析 body 並執行 validator。
// JSON 型別錯誤轉成欄位層級的 ValidationError。
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) {
			field := ute.Field
			if field == "" {
				field = "body"
			}
			return &api.ValidationError{Fields: []api.FieldError{{Field: field, Rule: "type", Param: ute.Type.String()}}}
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}

// parseListOptions 讀取 skip（或 offset）與 limit，負數或非整數視為輸入錯誤
func parseListOptions(c echo.Context) (store.ListOptions, error) {
	var opts store.ListOptions
	skipName := "skip"
	skip := c.QueryParam(skipName)
	if skip == "" {
		skipName = "offset"
		skip = c.QueryParam(skipName)
	}
	if skip != "" {
		n, err := parseNonNegative(skipName, skip)
		if err != nil {
			return opts, err
		}
		opts.Offset = n
	}
	if limit := c.QueryParam("limit"); limit != "" {
		n, err := parseNonNegative("limit", limit)
		if err != nil {
			return opts, err
		}
		opts.Limit = n
	}
	return opts, nil
}

func parseNonNegative(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, api.NewValidationError(field, "integer")
	}
	if n < 0 {
		return 0, &api.ValidationError{Fields: []api.FieldError{{Field: field, Rule: "min", Param: "0"}}}
	}
	return n, nil
}

// queryValue 回傳查詢參數；未提供時為 nil
func queryValue[T ~string](c echo.Context, name string) *T {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	out := T(v)
	return &out
}

func queryBool(c echo.Context, name string) (*bool, error) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, api.NewValidationError(name, "boolean")
	}
	return &b, nil
}
