package service

import (
	"context"
	"fmt"

	"stylehub_dev_v1_202601/internal/api/dto"
	"stylehub_dev_v1_202601/internal/model"
	"stylehub_dev_v1_202601/internal/repository"
)

// ==================== InventoryService 库存服务 ====================

// InventoryService 库存服务
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	auditSvc      *AuditService
}

// NewInventoryService 创建库存服务
func NewInventoryService(inventoryRepo repository.InventoryRepository, auditSvc *AuditService) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		auditSvc:      auditSvc,
	}
}

// ==================== 查询 ====================

// ListInventory 库存列表，衍生字段现算
func (s *InventoryService) ListInventory(ctx context.Context, keyword string) ([]dto.InventoryResp, error) {
	items, err := s.inventoryRepo.List(ctx, keyword)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.InventoryResp, 0, len(items))
	for i := range items {
		resp = append(resp, s.ToInventoryResp(&items[i]))
	}
	return resp, nil
}

// LowStockItems 低库存清单（巡检任务和看板共用）
func (s *InventoryService) LowStockItems(ctx context.Context) ([]dto.InventoryResp, error) {
	items, err := s.inventoryRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	low := make([]dto.InventoryResp, 0)
	for i := range items {
		if items[i].LowStock() {
			low = append(low, s.ToInventoryResp(&items[i]))
		}
	}
	return low, nil
}

// ==================== 写入 ====================

// UpdateStock 更新在库数量和补货阈值
// reserved 不动；productID 不存在时静默跳过，也不创建新记录（与历史行为一致）
func (s *InventoryService) UpdateStock(ctx context.Context, productID int64, req *dto.InventoryUpdateRequest) error {
	before, err := s.inventoryRepo.GetByProductID(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.inventoryRepo.UpdateStock(ctx, productID, *req.InStock, *req.ReorderPoint); err != nil {
		return err
	}

	if before != nil {
		after, _ := s.inventoryRepo.GetByProductID(ctx, productID)
		s.auditSvc.Record(ctx, "inventory", before.ID, model.AuditActionUpdate,
			fmt.Sprintf("更新库存 %s: in_stock %d -> %d", before.ProductName, before.InStock, *req.InStock),
			before, after)
	}
	return nil
}

// ==================== 响应转换 ====================

// ToInventoryResp 模型转响应，Available / LowStock 读取时计算
func (s *InventoryService) ToInventoryResp(item *model.InventoryItem) dto.InventoryResp {
	return dto.InventoryResp{
		ID:           item.ID,
		ProductID:    item.ProductID,
		ProductName:  item.ProductName,
		InStock:      item.InStock,
		Reserved:     item.Reserved,
		Available:    item.Available(),
		ReorderPoint: item.ReorderPoint,
		LowStock:     item.LowStock(),
		UpdatedAt:    item.UpdatedAt,
	}
}
