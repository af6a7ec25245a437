package service

import (
	"context"
	"encoding/json"
	"log"

	"stylehub_dev_v1_202601/internal/api/dto"
	"stylehub_dev_v1_202601/internal/middleware"
	"stylehub_dev_v1_202601/internal/model"
	"stylehub_dev_v1_202601/internal/repository"
)

// ==================== AuditService 审计服务 ====================

// AuditService 审计流水服务
// 操作人信息从 request context 里取（由 middleware.AuditContext 注入）
type AuditService struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditService 创建审计服务
func NewAuditService(auditRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record 记录一条操作流水
// 审计失败只打日志不阻断业务
func (s *AuditService) Record(ctx context.Context, entityType string, entityID int64, action, description string, before, after interface{}) {
	entry := &model.AuditLog{
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		Description: description,
	}

	if info := middleware.GetAuditInfo(ctx); info != nil {
		entry.UserID = info.UserID
		entry.UserName = info.Email
	}

	if before != nil {
		if data, err := json.Marshal(before); err == nil {
			entry.BeforeData = data
		}
	}
	if after != nil {
		if data, err := json.Marshal(after); err == nil {
			entry.AfterData = data
		}
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.Printf("[AuditService] 写审计日志失败: %v", err)
	}
}

// ListLogs 查询操作流水
func (s *AuditService) ListLogs(ctx context.Context, entityType string, entityID int64, page, pageSize int) ([]dto.AuditLogResp, int64, error) {
	logs, total, err := s.auditRepo.List(ctx, repository.AuditLogFilter{
		EntityType: entityType,
		EntityID:   entityID,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		return nil, 0, err
	}

	resp := make([]dto.AuditLogResp, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, dto.AuditLogResp{
			ID:          l.ID,
			UserID:      l.UserID,
			UserName:    l.UserName,
			EntityType:  l.EntityType,
			EntityID:    l.EntityID,
			Action:      l.Action,
			Description: l.Description,
			BeforeData:  string(l.BeforeData),
			AfterData:   string(l.AfterData),
			CreatedAt:   l.CreatedAt,
		})
	}
	return resp, total, nil
}
