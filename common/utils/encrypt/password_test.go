package encrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncryptPassword(t *testing.T) {
	encrypted := EncryptPassword("abc12345")
	// SHA256 十六进制摘要固定 64 位
	assert.Len(t, encrypted, 64)
	assert.NotEqual(t, "abc12345", encrypted)
	// 同一输入结果稳定
	assert.Equal(t, encrypted, EncryptPassword("abc12345"))
}

func TestComparePassword(t *testing.T) {
	encrypted := EncryptPassword("abc12345")
	assert.True(t, ComparePassword("abc12345", encrypted))
	assert.False(t, ComparePassword("abc12346", encrypted))
	assert.False(t, ComparePassword("", encrypted))
}
