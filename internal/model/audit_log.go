package model

import "gorm.io/datatypes"

// ==================== 审计动作常量 ====================

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditLog 管理端操作流水
// 记录谁在什么时间对哪个实体做了什么，变更前后快照存 JSON
type AuditLog struct {
	BaseModel

	UserID   int64  `gorm:"index"`
	UserName string `gorm:"size:100"` // 冗余用户名，用户删除后仍可追溯

	EntityType string `gorm:"size:50;index"` // product / inventory / order
	EntityID   int64  `gorm:"index"`
	Action     string `gorm:"size:20"`

	Description string `gorm:"size:255"`

	// 变更前后的实体快照
	BeforeData datatypes.JSON `gorm:"type:json"`
	AfterData  datatypes.JSON `gorm:"type:json"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
