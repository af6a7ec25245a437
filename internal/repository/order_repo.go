package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stylehub_dev_v1_202601/internal/model"
)

// ==================== 接口定义 ====================

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// Create 创建订单及订单行（同一事务）
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, int64, error)

	// UpdateStatus 无条件覆盖状态；id 不存在时静默跳过（与历史行为一致）
	UpdateStatus(ctx context.Context, id int64, status string) error

	// 看板统计
	Recent(ctx context.Context, limit int) ([]model.Order, error)
	SumTotal(ctx context.Context, excludeStatuses ...string) (float64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	SalesByCategory(ctx context.Context) ([]CategorySales, error)
	Count(ctx context.Context) (int64, error)
}

// ==================== 过滤条件 ====================

// OrderFilter 订单过滤条件
type OrderFilter struct {
	Status   string
	Keyword  string // 匹配订单号 / 客户名 / 客户邮箱
	Page     int
	PageSize int
}

// CategorySales 按商品分类聚合的销售额
type CategorySales struct {
	Category string  `json:"category"`
	Sales    float64 `json:"sales"`
}

// ==================== 仓储实现 ====================

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	// Items 由 GORM 关联一并写入
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) List(ctx context.Context, filter OrderFilter) ([]model.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Order{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		query = query.Where("order_number LIKE ? OR customer_name LIKE ? OR customer_email LIKE ?", kw, kw, kw)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var orders []model.Order
	if err := query.Preload("Items").Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ==================== 看板统计 ====================

func (r *orderRepo) Recent(ctx context.Context, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at desc").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) SumTotal(ctx context.Context, excludeStatuses ...string) (float64, error) {
	query := r.db.WithContext(ctx).Model(&model.Order{})
	if len(excludeStatuses) > 0 {
		query = query.Where("status NOT IN ?", excludeStatuses)
	}

	var sum float64
	err := query.Select("COALESCE(SUM(total), 0)").Scan(&sum).Error
	return sum, err
}

func (r *orderRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Cnt    int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("status, COUNT(*) as cnt").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, r := range rows {
		result[r.Status] = r.Cnt
	}
	return result, nil
}

func (r *orderRepo) SalesByCategory(ctx context.Context) ([]CategorySales, error) {
	// 商品可能已被删除（软删），此时归入 Uncategorized
	var rows []CategorySales
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("COALESCE(NULLIF(products.category, ''), 'Uncategorized') as category, SUM(order_items.subtotal) as sales").
		Joins("LEFT JOIN products ON products.id = order_items.product_id AND products.deleted_at IS NULL").
		Group("category").
		Order("sales desc").
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error
	return count, err
}
