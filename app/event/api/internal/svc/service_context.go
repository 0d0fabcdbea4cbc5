package svc

import (
	"fmt"
	"time"

	"event-platform/app/event/api/internal/config"
	"event-platform/app/event/model"
	"event-platform/app/event/mq"
	"event-platform/common/messaging"
	"event-platform/common/middleware"

	"github.com/redis/go-redis/v9"
	"github.com/zeromicro/go-zero/core/breaker"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ServiceContext struct {
	Config config.Config

	// 数据存储
	DB    *gorm.DB
	Redis *redis.Client

	// 报名/取消报名写入的熔断保护
	JoinBreaker breaker.Breaker

	// Model 层
	EventModel *model.EventModel

	// 通知发布器（nil 安全，MQ 不可用时服务降级继续运行）
	Producer *mq.Producer

	// 中间件
	UserAuthMiddleware rest.Middleware
}

func NewServiceContext(c config.Config) *ServiceContext {
	// 1. 初始化数据库连接
	db := initDB(c.MySQL)

	// 2. 初始化 Redis（Token 黑名单）
	rdb := initRedis(c.BizRedis)

	// 3. 初始化消息客户端（失败不阻塞服务启动，通知降级为丢弃）
	producer := initProducer(c)

	// 4. 初始化熔断器
	joinBreaker := breaker.NewBreaker(
		breaker.WithName("event-join"),
	)

	return &ServiceContext{
		Config: c,

		DB:    db,
		Redis: rdb,

		JoinBreaker: joinBreaker,

		EventModel: model.NewEventModel(db),

		Producer: producer,

		UserAuthMiddleware: middleware.NewUserAuthMiddleware(rdb, c.Auth.AccessSecret).Handle,
	}
}

// 初始化函数

// initDB 初始化数据库连接
func initDB(mysqlConf config.MySQLConfig) *gorm.DB {
	dsn := buildMySQLDSN(mysqlConf)
	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info), // 开发环境打印 SQL
	})
	if err != nil {
		logx.Errorf("连接数据库失败: %v", err)
		panic(err)
	}

	// 设置连接池
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	maxOpenConns := mysqlConf.MaxOpenConns
	if maxOpenConns <= 0 {
		maxOpenConns = 100
	}
	maxIdleConns := mysqlConf.MaxIdleConns
	if maxIdleConns <= 0 {
		maxIdleConns = 10
	}
	connMaxLifetime := mysqlConf.ConnMaxLifetime
	if connMaxLifetime <= 0 {
		connMaxLifetime = 3600
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Second)

	logx.Info("数据库连接成功")
	return db
}

// initRedis 初始化 Redis 连接
func initRedis(c config.RedisConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     c.Host,
		Password: c.Pass,
		DB:       c.DB,
	})
	logx.Info("Redis 连接初始化成功")
	return rdb
}

// initProducer 初始化通知发布器
func initProducer(c config.Config) *mq.Producer {
	msgCfg := messaging.DefaultConfig()
	msgCfg.Redis = messaging.RedisConfig{
		Addr:     c.BizRedis.Host,
		Password: c.BizRedis.Pass,
		DB:       c.BizRedis.DB,
	}
	msgCfg.ServiceName = c.Messaging.ServiceName
	msgCfg.EnableMetrics = c.Messaging.EnableMetrics
	msgCfg.RetryConfig.MaxRetries = c.Messaging.MaxRetries

	client, err := messaging.NewClient(msgCfg)
	if err != nil {
		logx.Errorf("消息客户端初始化失败，通知功能降级: %v", err)
		return nil
	}
	return mq.NewProducer(client)
}

func buildMySQLDSN(c config.MySQLConfig) string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}
