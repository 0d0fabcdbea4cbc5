package svc

import (
	"fmt"
	"log"
	"time"

	"event-platform/app/notification/model"
	"event-platform/app/notification/mq/internal/config"
	"event-platform/common/messaging"

	"github.com/zeromicro/go-zero/core/logx"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ServiceContext 消费者服务上下文
type ServiceContext struct {
	Config config.Config

	// 通知存储
	NotificationModel model.NotificationModel

	// 消息中间件客户端
	MsgClient *messaging.Client
}

// NewServiceContext 创建服务上下文
func NewServiceContext(c config.Config) *ServiceContext {
	db := initDB(c.MySQL)

	// 消费端必须有 MQ 连接，失败直接退出
	msgClient, err := initMessaging(c)
	if err != nil {
		log.Fatalf("消息中间件初始化失败: %v", err)
	}

	return &ServiceContext{
		Config:            c,
		NotificationModel: model.NewNotificationModel(db),
		MsgClient:         msgClient,
	}
}

// initDB 初始化数据库连接
func initDB(mysqlConf config.MySQLConfig) *gorm.DB {
	dsn := buildMySQLDSN(mysqlConf)
	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
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

// initMessaging 初始化消息中间件
func initMessaging(c config.Config) (*messaging.Client, error) {
	msgConfig := messaging.Config{
		Redis: messaging.RedisConfig{
			Addr:     c.Messaging.Redis.Host,
			Password: c.Messaging.Redis.Pass,
			DB:       c.Messaging.Redis.DB,
		},
		ServiceName:   c.Messaging.ServiceName,
		EnableMetrics: c.Messaging.EnableMetrics,
		RetryConfig: messaging.RetryConfig{
			MaxRetries:      c.Messaging.Retry.MaxRetries,
			InitialInterval: c.Messaging.Retry.InitialInterval,
			MaxInterval:     c.Messaging.Retry.MaxInterval,
			Multiplier:      c.Messaging.Retry.Multiplier,
		},
	}

	client, err := messaging.NewClient(msgConfig)
	if err != nil {
		return nil, fmt.Errorf("创建消息客户端失败: %w", err)
	}

	return client, nil
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
