// File: internal/handler/upload.go
package handler

import (
	"errors"
	"net/http"

	"jdgk-cms/internal/api"
	"jdgk-cms/internal/upload"

	"github.com/labstack/echo/v4"
)

// multipart 表頭等額外空間
const multipartOverhead = 1 << 20

// UploadHandler 儲存上傳檔案並回傳公開網址
// @Summary     Upload a file
// @Description path 為空或以 / 結尾時以 "<unix秒>_<檔名>" 存入該資料夾；否則 path 即儲存路徑
// @Tags        storage
// @Accept      multipart/form-data
// @Produce     json
// @Param       file   formData file   true  "檔案"
// @Param       path   formData string false "儲存路徑或資料夾"
// @Param       bucket formData string false "相容欄位，實際儲存位置由伺服器設定決定"
// @Success     200    {object} api.UploadResponse
// @Failure     400    {object} api.HTTPError
// @Failure     413    {object} api.HTTPError
// @Failure     500    {object} api.HTTPError
// @Router      /storage/upload [post]
func UploadHandler(storage upload.Storage, maxBytes int64) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if maxBytes > 0 {
			req.Body = http.MaxBytesReader(c.Response(), req.Body, maxBytes+multipartOverhead)
		}

		fh, err := c.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return c.JSON(http.StatusRequestEntityTooLarge, api.HTTPError{Message: "file too large"})
			}
			return respondError(c, api.NewValidationError("file", "required"))
		}
		if maxBytes > 0 && fh.Size > maxBytes {
			return c.JSON(http.StatusRequestEntityTooLarge, api.HTTPError{Message: "file too large"})
		}

		key, err := upload.ObjectKey(c.FormValue("path"), fh.Filename, timeNow())
		if err != nil {
			return respondError(c, api.NewValidationError("path", "filepath"))
		}

		src, err := fh.Open()
		if err != nil {
			return respondError(c, err)
		}
		defer src.Close()

		url, err := storage.Save(req.Context(), key, src, fh.Size, fh.Header.Get("Content-Type"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, api.UploadResponse{PublicURL: url})
	}
}
