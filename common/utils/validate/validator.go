package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// 预编译正则表达式，提升性能
var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\p{Han}]{2,20}$`)
)

// IsValidEmail 验证邮箱格式
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidUsername 验证用户名（2-20位字母数字下划线或汉字）
func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// IsValidPassword 验证密码强度（8-64位，至少包含字母和数字）
func IsValidPassword(password string) bool {
	if len(password) < 8 || len(password) > 64 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			hasLetter = true
		case c >= '0' && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// IsNotBlank 判断字符串不为空白
func IsNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsBlank 判断字符串为空白
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// LengthBetween 判断字符串长度在范围内（按字符数，非字节数）
func LengthBetween(s string, min, max int) bool {
	length := utf8.RuneCountInString(s)
	return length >= min && length <= max
}

// MaxLength 判断字符串长度不超过最大值
func MaxLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// MinLength 判断字符串长度不少于最小值
func MinLength(s string, min int) bool {
	return utf8.RuneCountInString(s) >= min
}

// InRange 判断整数在范围内
func InRange(n, min, max int) bool {
	return n >= min && n <= max
}

// InRange64 判断 int64 在范围内
func InRange64(n, min, max int64) bool {
	return n >= min && n <= max
}

// IsPositive 判断是否为正数
func IsPositive(n int64) bool {
	return n > 0
}

// IsNonNegative 判断是否为非负数
func IsNonNegative(n int64) bool {
	return n >= 0
}

// Contains 判断字符串是否在列表中
func Contains(s string, list []string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// ContainsInt 判断整数是否在列表中
func ContainsInt(n int, list []int) bool {
	for _, item := range list {
		if item == n {
			return true
		}
	}
	return false
}
