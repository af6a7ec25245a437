package model

// InventoryItem 库存记录，每个商品一条
// 注意：Available / LowStock 永远是读取时计算的衍生值，不落库，
// 避免迁移或并发写时出现脏缓存
type InventoryItem struct {
	BaseModel
	AuditMixin

	ProductID   int64  `gorm:"uniqueIndex;not null"` // 关联 products.id，不建外键约束
	ProductName string `gorm:"size:255"`             // 冗余商品名，方便列表检索

	InStock      int `gorm:"default:0"` // 在库数量
	Reserved     int `gorm:"default:0"` // 已被未发货订单占用的数量
	ReorderPoint int `gorm:"default:0"` // 补货阈值
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

// Available 可用库存 = 在库 - 占用
// 历史数据里 Reserved 可能大于 InStock，此处不做钳制，允许出现负数
func (i *InventoryItem) Available() int {
	return i.InStock - i.Reserved
}

// LowStock 可用库存落到补货阈值及以下即视为低库存
func (i *InventoryItem) LowStock() bool {
	return i.Available() <= i.ReorderPoint
}
