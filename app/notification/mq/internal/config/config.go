package config

import "time"

// Config 通知消费者服务配置
type Config struct {
	Name string
	Mode string

	// MySQL配置
	MySQL MySQLConfig

	// 消息中间件配置
	Messaging MessageConf
}

// MySQLConfig MySQL配置
type MySQLConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	MaxOpenConns    int `json:",default=100"`
	MaxIdleConns    int `json:",default=10"`
	ConnMaxLifetime int `json:",default=3600"`
}

// MessageConf 消息中间件配置
type MessageConf struct {
	// Redis配置（消息流存储）
	Redis RedisConf

	ServiceName   string // 服务名称（用作消费者组名）
	EnableMetrics bool   `json:",default=true"`

	// 重试配置
	Retry RetryConfig
}

// RedisConf Redis配置
type RedisConf struct {
	Host string
	Pass string `json:",optional"`
	DB   int    `json:",default=0"`
}

// RetryConfig 重试配置
type RetryConfig struct {
	MaxRetries      int           `json:",default=3"`
	InitialInterval time.Duration `json:",default=100ms"`
	MaxInterval     time.Duration `json:",default=10s"`
	Multiplier      float64       `json:",default=2.0"`
}
