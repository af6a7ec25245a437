package service

import (
	"context"
	"encoding/json"
	"time"

	"stylehub_dev_v1_202601/internal/api/dto"
	"stylehub_dev_v1_202601/internal/repository"
	"stylehub_dev_v1_202601/pkg/utils"
)

// 看板统计缓存 key，聚合涉及多张表，短缓存扛住前端轮询
const dashboardCacheKey = "dashboard:stats"

// ==================== DashboardService 看板服务 ====================

// DashboardService 销售看板服务
// 所有指标读取时聚合，不落库，避免出现脏缓存统计
type DashboardService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	inventorySvc *InventoryService
	orderSvc     *OrderService

	cacheTTL time.Duration
}

// NewDashboardService 创建看板服务
func NewDashboardService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	inventorySvc *InventoryService,
	orderSvc *OrderService,
) *DashboardService {
	return &DashboardService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		inventorySvc: inventorySvc,
		orderSvc:     orderSvc,
		cacheTTL:     30 * time.Second,
	}
}

// SetCacheTTL 设置统计缓存时长（测试用）
func (s *DashboardService) SetCacheTTL(ttl time.Duration) {
	s.cacheTTL = ttl
}

// ==================== 统计 ====================

// GetStats 看板统计
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsResp, error) {
	// 先查缓存
	if cached, ok := utils.GetCache(dashboardCacheKey); ok {
		var stats dto.DashboardStatsResp
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := s.buildStats(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		utils.SetCacheTTL(dashboardCacheKey, string(data), s.cacheTTL)
	}
	return stats, nil
}

func (s *DashboardService) buildStats(ctx context.Context) (*dto.DashboardStatsResp, error) {
	// 营收不计已取消订单
	revenue, err := s.orderRepo.SumTotal(ctx, "cancelled")
	if err != nil {
		return nil, err
	}

	totalOrders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalProducts, err := s.productRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.orderRepo.SalesByCategory(ctx)
	if err != nil {
		return nil, err
	}
	categorySales := make([]dto.CategorySalesResp, 0, len(byCategory))
	for _, c := range byCategory {
		categorySales = append(categorySales, dto.CategorySalesResp{
			Category: c.Category,
			Sales:    c.Sales,
		})
	}

	lowStock, err := s.inventorySvc.LowStockItems(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.orderRepo.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}
	recentResp := make([]dto.OrderResp, 0, len(recent))
	for i := range recent {
		recentResp = append(recentResp, s.orderSvc.ToOrderResp(&recent[i]))
	}

	return &dto.DashboardStatsResp{
		TotalRevenue:    revenue,
		TotalOrders:     totalOrders,
		TotalProducts:   totalProducts,
		LowStockCount:   len(lowStock),
		OrdersByStatus:  byStatus,
		SalesByCategory: categorySales,
		RecentOrders:    recentResp,
		GeneratedAt:     time.Now(),
	}, nil
}
