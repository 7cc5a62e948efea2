// File: internal/upload/upload.go
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

var ErrInvalidName = errors.New("invalid upload name")

// Storage 儲存上傳檔案並回傳公開網址
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// ObjectKey 依上傳參數決定儲存路徑：
// p 為空或以 "/" 結尾時視為資料夾，檔名為 "<unix秒>_<原檔名>"；
// 否則 p 即完整路徑。所有 ".." 片段會被移除，結果不會以 "/" 開頭。
func ObjectKey(p, filename string, now time.Time) (string, error) {
	if p == "" || strings.HasSuffix(p, "/") {
		name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
		if name == "" || name == "." || name == "/" {
			return "", ErrInvalidName
		}
		name = fmt.Sprintf("%d_%s", now.Unix(), name)
		if dir := cleanRel(p); dir != "" {
			return dir + "/" + name, nil
		}
		return name, nil
	}
	key := cleanRel(p)
	if key == "" {
		return "", ErrInvalidName
	}
	return key, nil
}

func cleanRel(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.ReplaceAll(p, "..", "")
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}
