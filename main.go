// @title CourseTrack 后端 API
// @version 1.0
// @description 每日视频配额跟踪器的本地后端服务。

// @host localhost:8321
// @BasePath /api

package main

import (
	"flag"
	"log"

	"course_track_backend/internal/app"
	"course_track_backend/internal/config"
	"course_track_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configPath := flag.String("config", "configs", "配置文件所在目录")
	dataDir := flag.String("data", "", "持久化文档目录（覆盖配置）")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *dataDir != "" {
		cfg.Storage.DataDir = *dataDir
	}

	application := app.NewApp(cfg, *configPath)
	defer logger.Log.Sync()

	application.Run()
}
