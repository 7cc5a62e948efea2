package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	key     string
	content string
	err     error
}

func (s *fakeStorage) Save(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	b, _ := io.ReadAll(r)
	s.key, s.content = key, string(b)
	return "/uploads/" + key, nil
}

func uploadRequest(t *testing.T, fields map[string]string, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		fw, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/storage/upload", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func runUpload(t *testing.T, h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, h(newEcho().NewContext(req, rec)))
	return rec
}

func TestUploadHandler(t *testing.T) {
	timeNow = func() time.Time { return time.Unix(1715000000, 0) }
	t.Cleanup(func() { timeNow = time.Now })

	cases := []struct {
		name    string
		path    string
		wantKey string
	}{
		{"no path", "", "1715000000_logo.png"},
		{"folder", "images/", "images/1715000000_logo.png"},
		{"explicit path", "images/brand.png", "images/brand.png"},
		{"traversal removed", "../../etc/passwd", "etc/passwd"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := &fakeStorage{}
			fields := map[string]string{"bucket": "public"}
			if tc.path != "" {
				fields["path"] = tc.path
			}
			rec := runUpload(t, UploadHandler(st, 1<<20), uploadRequest(t, fields, "logo.png", "PNG"))
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, tc.wantKey, st.key)
			require.Equal(t, "PNG", st.content)
			require.Contains(t, rec.Body.String(), `"publicUrl":"/uploads/`+tc.wantKey+`"`)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		rec := runUpload(t, UploadHandler(&fakeStorage{}, 1<<20), uploadRequest(t, map[string]string{"path": "a/"}, "", ""))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "file", decodeError(t, rec).Fields[0].Field)
	})

	t.Run("too large", func(t *testing.T) {
		rec := runUpload(t, UploadHandler(&fakeStorage{}, 2), uploadRequest(t, nil, "logo.png", "PNG"))
		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		rec := runUpload(t, UploadHandler(&fakeStorage{err: errors.New("disk")}, 1<<20), uploadRequest(t, nil, "logo.png", "PNG"))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
