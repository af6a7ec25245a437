package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stylehub_dev_v1_202601/internal/model"
)

// ==================== 接口定义 ====================

// InventoryRepository 库存仓储接口
type InventoryRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	GetByProductID(ctx context.Context, productID int64) (*model.InventoryItem, error)
	List(ctx context.Context, keyword string) ([]model.InventoryItem, error)

	// UpdateStock 覆盖 in_stock / reorder_point 两个字段，reserved 保持不动。
	// productID 不存在时静默跳过，也不会顺手创建记录，与历史行为一致
	UpdateStock(ctx context.Context, productID int64, inStock, reorderPoint int) error

	Count(ctx context.Context) (int64, error)
}

// ==================== 仓储实现 ====================

type inventoryRepo struct {
	db *gorm.DB
}

// NewInventoryRepository 创建库存仓储
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepo) GetByProductID(ctx context.Context, productID int64) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) List(ctx context.Context, keyword string) ([]model.InventoryItem, error) {
	query := r.db.WithContext(ctx).Model(&model.InventoryItem{})
	if keyword != "" {
		query = query.Where("product_name LIKE ?", "%"+keyword+"%")
	}

	var items []model.InventoryItem
	if err := query.Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepo) UpdateStock(ctx context.Context, productID int64, inStock, reorderPoint int) error {
	// map 更新保证零值也能写入
	return r.db.WithContext(ctx).
		Model(&model.InventoryItem{}).
		Where("product_id = ?", productID).
		Updates(map[string]interface{}{
			"in_stock":      inStock,
			"reorder_point": reorderPoint,
		}).Error
}

func (r *inventoryRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.InventoryItem{}).Count(&count).Error
	return count, err
}
