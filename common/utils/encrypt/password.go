// Package encrypt 用户口令散列
//
// users 表的 password 列只存散列值，明文口令不落库、不打日志。
package encrypt

import (
	"crypto/sha256"
	"encoding/hex"
)

// EncryptPassword 计算口令散列（SHA-256，64 字符小写 hex）
// 注册和改密时入库前调用；口令格式约束见 validate.IsValidPassword
func EncryptPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// ComparePassword 校验明文口令与存量散列是否匹配
func ComparePassword(rawPassword, encryptedPassword string) bool {
	return EncryptPassword(rawPassword) == encryptedPassword
}
