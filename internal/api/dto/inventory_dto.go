package dto

import "time"

// ==================== 请求 ====================

// InventoryUpdateRequest 更新库存请求
// 只允许改在库数量和补货阈值，reserved 由订单流程占用，不开放给后台直改
type InventoryUpdateRequest struct {
	InStock      *int `json:"in_stock" binding:"required,gte=0"`
	ReorderPoint *int `json:"reorder_point" binding:"required,gte=0"`
}

// ==================== 响应 ====================

// InventoryResp 库存响应
// Available / LowStock 为读取时计算的衍生字段
type InventoryResp struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	ProductName  string    `json:"product_name"`
	InStock      int       `json:"in_stock"`
	Reserved     int       `json:"reserved"`
	Available    int       `json:"available"`
	ReorderPoint int       `json:"reorder_point"`
	LowStock     bool      `json:"low_stock"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// InventoryListResp 库存列表响应
type InventoryListResp struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    []InventoryResp `json:"data"`
	Total   int64           `json:"total"`
}
