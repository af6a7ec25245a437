package dto

import "time"

// ==================== 看板统计 ====================

// CategorySalesResp 按分类聚合的销售额
type CategorySalesResp struct {
	Category string  `json:"category"`
	Sales    float64 `json:"sales"`
}

// DashboardStatsResp 看板统计响应
// 全部为读取时聚合的衍生数据，不落库
type DashboardStatsResp struct {
	TotalRevenue    float64             `json:"total_revenue"` // 不含已取消订单
	TotalOrders     int64               `json:"total_orders"`
	TotalProducts   int64               `json:"total_products"`
	LowStockCount   int                 `json:"low_stock_count"`
	OrdersByStatus  map[string]int64    `json:"orders_by_status"`
	SalesByCategory []CategorySalesResp `json:"sales_by_category"`
	RecentOrders    []OrderResp         `json:"recent_orders"`
	GeneratedAt     time.Time           `json:"generated_at"`
}

// ==================== 审计日志 ====================

// AuditLogResp 审计日志响应
type AuditLogResp struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	UserName    string    `json:"user_name"`
	EntityType  string    `json:"entity_type"`
	EntityID    int64     `json:"entity_id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	BeforeData  string    `json:"before_data,omitempty"`
	AfterData   string    `json:"after_data,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
