package middleware

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stylehub_dev_v1_202601/internal/model"
)

// ==================== 测试辅助 ====================

func setupAuditTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Product{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}

	RegisterAuditCallbacks(db)
	return db
}

// ==================== 单元测试 ====================

func TestAuditCallbacks_Create(t *testing.T) {
	db := setupAuditTestDB(t)
	ctx := WithAuditInfo(context.Background(), 42, "admin@stylehub.com")

	p := &model.Product{Name: "Tracked"}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	var saved model.Product
	db.First(&saved, p.ID)
	if saved.CreatedBy != 42 {
		t.Errorf("created_by = %d, want 42", saved.CreatedBy)
	}
	if saved.UpdatedBy != 42 {
		t.Errorf("updated_by = %d, want 42", saved.UpdatedBy)
	}
}

func TestAuditCallbacks_Update(t *testing.T) {
	db := setupAuditTestDB(t)

	createCtx := WithAuditInfo(context.Background(), 42, "admin@stylehub.com")
	p := &model.Product{Name: "Tracked"}
	db.WithContext(createCtx).Create(p)

	// 另一个用户来改
	updateCtx := WithAuditInfo(context.Background(), 7, "staff@stylehub.com")
	db.WithContext(updateCtx).Model(&model.Product{}).Where("id = ?", p.ID).
		Update("name", "Renamed")

	var saved model.Product
	db.First(&saved, p.ID)
	if saved.CreatedBy != 42 {
		t.Errorf("created_by = %d, 更新不应覆盖创建人", saved.CreatedBy)
	}
	if saved.UpdatedBy != 7 {
		t.Errorf("updated_by = %d, want 7", saved.UpdatedBy)
	}
}

func TestAuditCallbacks_NoUser(t *testing.T) {
	db := setupAuditTestDB(t)

	// 没有审计信息的写入（种子数据、任务）不报错，字段留零
	p := &model.Product{Name: "Anonymous"}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	var saved model.Product
	db.First(&saved, p.ID)
	if saved.CreatedBy != 0 {
		t.Errorf("created_by = %d, want 0", saved.CreatedBy)
	}
}

func TestGetAuditInfo(t *testing.T) {
	ctx := WithAuditInfo(context.Background(), 1, "admin@stylehub.com")

	info := GetAuditInfo(ctx)
	if info == nil || info.UserID != 1 || info.Email != "admin@stylehub.com" {
		t.Errorf("info = %+v", info)
	}

	if GetAuditInfo(context.Background()) != nil {
		t.Error("空 context 应返回 nil")
	}
	if GetAuditUserID(context.Background()) != 0 {
		t.Error("空 context 的用户 ID 应为 0")
	}
}
