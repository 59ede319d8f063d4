package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fachebot/chat-recap/internal/api"
	"github.com/fachebot/chat-recap/internal/config"
	"github.com/fachebot/chat-recap/internal/logger"
	"github.com/fachebot/chat-recap/internal/notify"
	"github.com/fachebot/chat-recap/internal/scheduler"
	"github.com/fachebot/chat-recap/internal/svc"
)

var configFile = flag.String("f", "etc/config.yaml", "the config file")

func main() {
	flag.Parse()

	// 读取配置文件
	c, err := config.LoadFromFile(*configFile)
	if err != nil {
		logger.Fatalf("读取配置文件失败, %s", err)
	}

	// 创建数据目录
	if _, err := os.Stat("data"); os.IsNotExist(err) {
		err := os.Mkdir("data", 0755)
		if err != nil {
			logger.Fatalf("创建数据目录失败, %s", err)
		}
	}

	// 创建服务上下文
	svcCtx := svc.NewServiceContext(c)

	// 启动HTTP服务
	handler := api.NewHandler(svcCtx.MessageModel, svcCtx.SummaryModel, svcCtx.Summarizer, svcCtx.LLMClient)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port),
		Handler: api.NewRouter(handler),
	}
	go func() {
		logger.Infof("[API] HTTP 服务监听 %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("[API] HTTP 服务启动失败: %s", err)
		}
	}()

	// 创建并启动调度器
	var schedulerInstance *scheduler.Scheduler
	if c.Digest.Enable {
		schedulerInstance = scheduler.NewScheduler(
			svcCtx.Summarizer,
			notify.NewNotifier(&c.Digest),
			svcCtx.MessageModel,
			svcCtx.DigestRunModel,
			&c.Digest,
		)
		if err := schedulerInstance.Start(); err != nil {
			logger.Fatalf("[Scheduler] 启动调度器失败: %s", err)
		}
	}

	// 等待程序退出
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	// 优雅关闭
	logger.Infof("正在关闭服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("[API] HTTP 服务关闭失败, %v", err)
	}
	if schedulerInstance != nil {
		schedulerInstance.Stop()
	}
	svcCtx.Close()
	logger.Infof("服务已停止")
}
