package model

// ==================== 角色常量 ====================

// 系统级角色: admin (管理员), staff (店员), customer (顾客)
// admin 才能进入数据看板；admin/staff 都能做商品/库存/订单管理
const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleCustomer = "customer"
)

// SysUser 系统用户
type SysUser struct {
	BaseModel
	// 基础信息
	Email    string `gorm:"size:100;uniqueIndex;not null"`
	Name     string `gorm:"size:100"`
	Password string `gorm:"size:255;not null"` // bcrypt 哈希，绝不存明文

	Role string `gorm:"size:20;default:'customer';index"`

	IsActive bool `gorm:"default:true"`
}

func (SysUser) TableName() string {
	return "sys_users"
}
