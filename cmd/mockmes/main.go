package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sysu-ecnc-dev/secom-mes-client/internal/config"
	"github.com/sysu-ecnc-dev/secom-mes-client/internal/mesmock"
)

func main() {
	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法加载配置文件", "error", err)
		return
	}

	/**********************************************
	 * 生成随机数据集并创建模拟服务端
	 **********************************************/
	dataset := mesmock.GenerateRandomDataset(cfg.MockMES.Seed.OperatorCount, cfg.MockMES.Seed.MaxLotsPerOperator)
	server := mesmock.NewServer(dataset)

	if cfg.MockMES.ExposeMetrics {
		server.Mux.Handle("/metrics", promhttp.Handler())
	}

	/**********************************************
	 * 启动 HTTP 服务器
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.MockMES.Port),
		Handler:      server.Mux,
		IdleTimeout:  time.Duration(cfg.MockMES.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.MockMES.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.MockMES.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("正在启动模拟 MES 服务器...", "port", cfg.MockMES.Port, "operators", cfg.MockMES.Seed.OperatorCount)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("无法启动服务器", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.MockMES.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("关闭服务器失败", slog.String("error", err.Error()))
	}
	logger.Info("服务器已成功关闭")
}
