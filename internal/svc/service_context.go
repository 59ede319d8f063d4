package svc

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/fachebot/chat-recap/internal/config"
	"github.com/fachebot/chat-recap/internal/ent"
	"github.com/fachebot/chat-recap/internal/llm"
	"github.com/fachebot/chat-recap/internal/logger"
	"github.com/fachebot/chat-recap/internal/model"
	"github.com/fachebot/chat-recap/internal/summarizer"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/net/proxy"
)

type ServiceContext struct {
	Config         *config.Config
	DbClient       *ent.Client
	TransportProxy *http.Transport
	MessageModel   *model.MessageModel
	SummaryModel   *model.SummaryModel
	DigestRunModel *model.DigestRunModel
	Summarizer     *summarizer.Summarizer
	LLMClient      *llm.Client
}

func NewServiceContext(c *config.Config) *ServiceContext {
	// 创建数据库连接
	client, err := ent.Open("sqlite3", "file:data/chat-recap.db?mode=rwc&_journal_mode=WAL&_fk=1")
	if err != nil {
		logger.Fatalf("打开数据库失败, %v", err)
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		logger.Fatalf("创建数据库Schema失败, %v", err)
	}

	// 创建SOCKS5代理
	var transportProxy *http.Transport
	if c.Sock5Proxy.Enable {
		socks5Proxy := fmt.Sprintf("%s:%d", c.Sock5Proxy.Host, c.Sock5Proxy.Port)
		dialer, err := proxy.SOCKS5("tcp", socks5Proxy, nil, proxy.Direct)
		if err != nil {
			logger.Fatalf("创建SOCKS5代理失败, %v", err)
		}

		transportProxy = &http.Transport{
			Dial:            dialer.Dial,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	messageModel := model.NewMessageModel(client.Message)
	summaryModel := model.NewSummaryModel(client.Summary)

	svcCtx := &ServiceContext{
		Config:         c,
		DbClient:       client,
		TransportProxy: transportProxy,
		MessageModel:   messageModel,
		SummaryModel:   summaryModel,
		DigestRunModel: model.NewDigestRunModel(client.DigestRun),
		Summarizer:     summarizer.NewSummarizer(messageModel, summaryModel),
	}
	if c.LLM.Enable {
		svcCtx.LLMClient = llm.NewClient(&c.LLM, transportProxy)
	}
	return svcCtx
}

func (svcCtx *ServiceContext) Close() {
	if err := svcCtx.DbClient.Close(); err != nil {
		logger.Errorf("关闭数据库失败, %v", err)
	}
}
