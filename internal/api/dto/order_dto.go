package dto

import "time"

// ==================== 请求 ====================

// OrderItemReq 订单行请求
type OrderItemReq struct {
	ProductID int64   `json:"product_id" binding:"required,gt=0"`
	Name      string  `json:"name" binding:"required,max=255"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

// OrderCreateRequest 创建订单请求
type OrderCreateRequest struct {
	CustomerName    string         `json:"customer_name" binding:"required,max=100"`
	CustomerEmail   string         `json:"customer_email" binding:"required,email"`
	ShippingAddress string         `json:"shipping_address" binding:"required,max=512"`
	Items           []OrderItemReq `json:"items" binding:"required,min=1,dive"`
}

// OrderStatusUpdateRequest 更新订单状态请求
type OrderStatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

// ==================== 响应 ====================

// OrderItemResp 订单行响应
type OrderItemResp struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderResp 订单响应
type OrderResp struct {
	ID              int64           `json:"id"`
	OrderNumber     string          `json:"order_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	ShippingAddress string          `json:"shipping_address"`
	Items           []OrderItemResp `json:"items"`
	Total           float64         `json:"total"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderListResp 订单列表响应
type OrderListResp struct {
	Code     int         `json:"code"`
	Message  string      `json:"message"`
	Data     []OrderResp `json:"data"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}
