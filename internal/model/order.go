package model

// ==================== 订单状态常量 ====================

// OrderStatus 订单状态
const (
	OrderStatusPending    = "pending"    // 待处理
	OrderStatusProcessing = "processing" // 处理中
	OrderStatusShipped    = "shipped"    // 已发货
	OrderStatusDelivered  = "delivered"  // 已签收
	OrderStatusCancelled  = "cancelled"  // 已取消
)

// OrderStatuses 全部合法状态，校验用
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValidOrderStatus 判断状态值是否合法
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ==================== 订单模型 ====================

type Order struct {
	BaseModel
	AuditMixin

	OrderNumber string `gorm:"size:32;uniqueIndex;not null"` // 对外展示的订单号

	// --- 客户信息 ---
	CustomerName    string `gorm:"size:100"`
	CustomerEmail   string `gorm:"size:100;index"`
	ShippingAddress string `gorm:"size:512"`

	// --- 金额与状态 ---
	// Total = Σ item.Subtotal，下单时一次算定，状态变更不重算
	Total  float64 `gorm:"default:0"`
	Status string  `gorm:"size:20;index;default:'pending'"`

	// --- 关联关系 ---
	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单行，商品信息在下单时快照，之后商品改价/删除不影响历史订单
type OrderItem struct {
	BaseModel
	OrderID   int64  `gorm:"index;not null"`
	ProductID int64  `gorm:"index"`
	Name      string `gorm:"size:255"`

	Quantity int     `gorm:"default:0"`
	Price    float64 `gorm:"default:0"`
	// Subtotal = Price * Quantity，下单时一次算定
	Subtotal float64 `gorm:"default:0"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
