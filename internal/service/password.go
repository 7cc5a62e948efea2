// File: internal/service/password.go
package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// hashCost 由 BCRYPT_COST 設定，啟動時呼叫 SetHashCost
var hashCost = bcrypt.DefaultCost

// SetHashCost 調整新密碼使用的 bcrypt cost；既有哈希不受影響
func SetHashCost(cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}
	hashCost = cost
	return nil
}

// HashPassword 以目前的 cost 產生加鹽的 bcrypt 哈希
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashBytes), nil
}

// ComparePassword 成功回傳 nil；不符或哈希格式錯誤回傳 bcrypt 的錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// VerifyPassword 回報密碼是否相符；格式錯誤的哈希視為不相符
func VerifyPassword(password, hash string) bool {
	return ComparePassword(hash, password) == nil
}
