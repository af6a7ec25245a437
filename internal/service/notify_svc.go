package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"stylehub_dev_v1_202601/internal/api/dto"
)

// ==================== NotifyService 通知服务 ====================

// NotifyConfig 通知配置
type NotifyConfig struct {
	WebhookURL string // 低库存告警 webhook，空则只打日志
	Timeout    time.Duration
}

// NotifyService 告警通知服务
// 目前只有低库存 webhook 一条通道，推送失败不重试，等下一轮巡检
type NotifyService struct {
	cfg    *NotifyConfig
	client *resty.Client
}

// NewNotifyService 创建通知服务
func NewNotifyService(cfg *NotifyConfig) *NotifyService {
	if cfg == nil {
		cfg = &NotifyConfig{}
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &NotifyService{
		cfg:    cfg,
		client: client,
	}
}

// lowStockPayload webhook 推送体
type lowStockPayload struct {
	Event     string              `json:"event"`
	Count     int                 `json:"count"`
	Items     []dto.InventoryResp `json:"items"`
	Timestamp time.Time           `json:"timestamp"`
}

// SendLowStockAlert 推送低库存告警
func (s *NotifyService) SendLowStockAlert(ctx context.Context, items []dto.InventoryResp) error {
	if len(items) == 0 {
		return nil
	}

	if s.cfg.WebhookURL == "" {
		log.Printf("[NotifyService] 未配置 webhook，低库存 %d 项仅记录日志", len(items))
		return nil
	}

	payload := lowStockPayload{
		Event:     "inventory.low_stock",
		Count:     len(items),
		Items:     items,
		Timestamp: time.Now(),
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(s.cfg.WebhookURL)
	if err != nil {
		return fmt.Errorf("推送低库存告警失败: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook 返回异常状态: %d", resp.StatusCode())
	}

	log.Printf("[NotifyService] 低库存告警已推送，共 %d 项", len(items))
	return nil
}
