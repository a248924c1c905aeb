package main

import (
	"log"

	"github.com/siamvision/helmet-reports-backend-go/internal/api"
	"github.com/siamvision/helmet-reports-backend-go/internal/config"
	"github.com/siamvision/helmet-reports-backend-go/internal/database"
	"github.com/siamvision/helmet-reports-backend-go/internal/handler"
	"github.com/siamvision/helmet-reports-backend-go/internal/service"
	"github.com/siamvision/helmet-reports-backend-go/internal/source"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据源
	var src source.Source
	switch cfg.SourceBackend {
	case "sqlite":
		db, err := database.Open(database.Config{Path: cfg.DBPath})
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}
		defer db.Close()
		src = source.NewSQLiteSource(db)
	case "sheet":
		src = source.NewSheetSource(cfg.SheetAPIURL, cfg.SheetTable, cfg.SheetAPIToken, cfg.FetchTimeout)
	default:
		log.Fatalf("Unknown SOURCE_BACKEND %q (want sheet or sqlite)", cfg.SourceBackend)
	}

	// 初始化服务与路由
	reportService := service.NewReportService(src)
	reportHandler := handler.NewReportHandler(reportService)
	router := api.SetupRouter(cfg, reportHandler)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
