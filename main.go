package main

import (
	"werewolf-be/internal/api/http"
	"werewolf-be/internal/config"
	"werewolf-be/internal/logger"
	"werewolf-be/internal/service"
	"werewolf-be/internal/state"

	"github.com/joho/godotenv"
)

func main() {
	// 本地开发用 .env 覆盖环境变量，文件不存在就跳过
	godotenv.Load()

	// 加载配置
	cfg := config.InitConfig()

	// 初始化日志器
	log := logger.InitLogger(cfg.LogLevel)
	defer log.Sync()

	// 组装应用状态
	appState := state.NewAppState(
		cfg,
		service.NewRoomService(cfg),
	)

	// 启动服务器
	http.RunServer(appState)
}
