/**
 * @projectName: EventPlatform
 * @package: config
 * @className: Config
 * @description: Event API 服务配置定义
 * @version: 1.0
 */

package config

import (
	"github.com/zeromicro/go-zero/rest"
)

// Config Event API 服务配置
type Config struct {
	rest.RestConf

	// JWT 认证配置
	Auth struct {
		AccessSecret string
		AccessExpire int64
	}

	// 数据存储
	MySQL    MySQLConfig
	BizRedis RedisConfig

	// 消息队列
	Messaging MessagingConfig

	// 限流配置
	RateLimit RateLimitConfig

	// 存储操作超时（秒）
	StoreTimeout int `json:",default=5"`
}

// RateLimitConfig 限流配置（令牌桶）
type RateLimitConfig struct {
	GlobalRate  float64 `json:",default=1000"` // 全局每秒请求数
	GlobalBurst int     `json:",default=2000"` // 全局突发容量
	IPRate      float64 `json:",default=50"`   // 单IP每秒请求数
	IPBurst     int     `json:",default=100"`  // 单IP突发容量
}

// MySQLConfig 数据库配置
type MySQLConfig struct {
	Host            string `json:",default=127.0.0.1"`
	Port            int    `json:",default=3306"`
	Username        string
	Password        string
	Database        string
	MaxOpenConns    int `json:",default=100"`  // 最大打开连接数
	MaxIdleConns    int `json:",default=10"`   // 最大空闲连接数
	ConnMaxLifetime int `json:",default=3600"` // 连接生命周期（秒）
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Host string
	Pass string `json:",optional"`
	DB   int    `json:",default=0"`
}

// MessagingConfig 消息队列配置
type MessagingConfig struct {
	ServiceName   string
	EnableMetrics bool `json:",default=true"`
	MaxRetries    int  `json:",default=3"`
}
