package database

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接
// dsn 非空时连 Postgres；为空时退回本地 sqlite 文件，方便开发演示零依赖起服务
// models: 需要自动建表/迁移的结构体指针
func InitDB(dsn string, sqlitePath string, models ...interface{}) *gorm.DB {
	// 开发环境下打印所有 SQL，方便调试
	dbLogger := logger.Default.LogMode(logger.Info)

	var (
		db  *gorm.DB
		err error
	)

	if dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: dbLogger})
	} else {
		if sqlitePath == "" {
			sqlitePath = "stylehub.db"
		}
		db, err = gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{Logger: dbLogger})
	}

	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	// 获取底层的 sqlDB 对象，用于设置连接池参数
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("获取底层 SQL DB 失败: %v", err)
	}

	// 连接池参数
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("数据库连接成功")

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			log.Fatalf("自动建表出错: %v", err)
		}
	}

	return db
}
