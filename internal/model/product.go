package model

type Product struct {
	BaseModel
	AuditMixin

	// --- 商品基本信息 ---
	Name        string `gorm:"size:255;index;not null"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"size:100;index"`
	Image       string `gorm:"size:512"` // 商品主图 URL

	// --- 价格与数量 ---
	// Price 单位为元，前端表单层保证 > 0
	Price    float64 `gorm:"default:0"`
	Quantity int     `gorm:"default:0"`
}

func (Product) TableName() string {
	return "products"
}

// Review 商品评价 (门店首页展示用，静态种子数据)
type Review struct {
	BaseModel
	ProductID int64  `gorm:"index"`
	Author    string `gorm:"size:100"`
	Rating    int    `gorm:"default:5"` // 1-5 星
	Content   string `gorm:"type:text"`
	Avatar    string `gorm:"size:512"`
}

func (Review) TableName() string {
	return "reviews"
}
