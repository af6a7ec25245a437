package dto

import "time"

// ==================== 请求 ====================

// ProductCreateRequest 创建商品请求
// 校验规则对应后台表单：名称/描述必填、价格必须大于 0、数量不能为负
type ProductCreateRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Category    string  `json:"category" binding:"max=100"`
	Image       string  `json:"image" binding:"omitempty,url"`
}

// ProductUpdateRequest 更新商品请求（部分字段，指针区分"未传"和"传了零值"）
type ProductUpdateRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	Image       *string  `json:"image" binding:"omitempty,url"`
}

// ==================== 响应 ====================

// ProductResp 商品响应
type ProductResp struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResp 商品列表响应
type ProductListResp struct {
	Code     int           `json:"code"`
	Message  string        `json:"message"`
	Data     []ProductResp `json:"data"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// ReviewResp 商品评价响应
type ReviewResp struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}
