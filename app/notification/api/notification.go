// ============================================================================
// 通知服务 API 入口
// ============================================================================
//
// 说明：
//   notification-api 是通知服务的 HTTP 接口层，负责：
//   - 用户收件箱查询（全部/未读/未读数量）
//   - 通知已读标记（单条/全部）
//
// 启动命令：
//   go run notification.go -f etc/notification-api.yaml
//
// ============================================================================

package main

import (
	"flag"
	"fmt"

	"event-platform/app/notification/api/internal/config"
	"event-platform/app/notification/api/internal/handler"
	"event-platform/app/notification/api/internal/svc"
	"event-platform/common/middleware"
	"event-platform/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/notification-api.yaml", "配置文件路径")

func main() {
	flag.Parse()

	// 设置全局错误处理器（必须在 server.Start() 之前）
	response.SetupGlobalErrorHandler()

	// 加载配置
	var c config.Config
	conf.MustLoad(*configFile, &c)

	// 创建 HTTP 服务器
	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	// 全局中间件：请求ID
	server.Use(middleware.NewRequestIDMiddleware().Handle)

	// 创建服务上下文
	ctx := svc.NewServiceContext(c)

	// 注册路由
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting notification-api server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
