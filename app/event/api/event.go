// ============================================================================
// 活动服务 API 入口
// ============================================================================
//
// 说明：
//   event-api 是活动服务的 HTTP 接口层，负责：
//   - 活动创建、编辑、删除
//   - 活动状态流转（发布/取消/结束）
//   - 活动报名与取消报名
//
// 启动命令：
//   go run event.go -f etc/event-api.yaml
//
// ============================================================================

package main

import (
	"flag"
	"fmt"

	"event-platform/app/event/api/internal/config"
	"event-platform/app/event/api/internal/handler"
	"event-platform/app/event/api/internal/svc"
	"event-platform/common/middleware"
	"event-platform/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/event-api.yaml", "配置文件路径")

func main() {
	flag.Parse()

	// 设置全局错误处理器（必须在 server.Start() 之前）
	// 让 handler 中的 httpx.ErrorCtx 使用统一的响应格式：
	//   {"code": 3001, "message": "活动不存在"}
	response.SetupGlobalErrorHandler()

	// 加载配置
	var c config.Config
	conf.MustLoad(*configFile, &c)

	// 创建 HTTP 服务器
	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	// 全局中间件：请求ID + 限流
	server.Use(middleware.NewRequestIDMiddleware().Handle)
	server.Use(middleware.NewRateLimitMiddleware(
		c.RateLimit.GlobalRate, c.RateLimit.GlobalBurst,
		c.RateLimit.IPRate, c.RateLimit.IPBurst,
	).Handle)

	// 创建服务上下文
	ctx := svc.NewServiceContext(c)

	// 注册路由
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting event-api server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
