package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.example.cn"))
	assert.False(t, IsValidEmail("user"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("user@example"))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("alice"))
	assert.True(t, IsValidUsername("张三"))
	assert.True(t, IsValidUsername("user_01"))
	assert.False(t, IsValidUsername("a"))
	assert.False(t, IsValidUsername("包含 空格"))
	assert.False(t, IsValidUsername("abcdefghijklmnopqrstu"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("abc12345"))
	assert.False(t, IsValidPassword("short1"))
	assert.False(t, IsValidPassword("onlyletters"))
	assert.False(t, IsValidPassword("12345678"))
}

func TestBlankHelpers(t *testing.T) {
	assert.True(t, IsBlank("   "))
	assert.False(t, IsBlank("x"))
	assert.True(t, IsNotBlank(" x "))
}

func TestLengthBetween(t *testing.T) {
	// 按字符数而非字节数
	assert.True(t, LengthBetween("读书会", 2, 5))
	assert.False(t, LengthBetween("读", 2, 5))
}
