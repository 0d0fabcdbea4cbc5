// ============================================================================
// 用户服务 API 配置
// ============================================================================

package config

import "github.com/zeromicro/go-zero/rest"

type Config struct {
	rest.RestConf

	// JWT 双 Token 配置
	Auth struct {
		AccessSecret  string
		AccessExpire  int64
		RefreshSecret string
		RefreshExpire int64
	}

	// MySQL配置
	MySQL MySQLConfig

	// Redis配置（Token 黑名单）
	BizRedis RedisConfig

	// 存储操作超时（秒）
	StoreTimeout int `json:",default=5"`
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

// RedisConfig Redis配置
type RedisConfig struct {
	Host string
	Pass string `json:",optional"`
	DB   int    `json:",default=0"`
}
