package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stylehub_dev_v1_202601/internal/model"
)

// ==================== 演示种子数据 ====================

// SeedDemoData 写入演示数据（用户/商品/库存/评价/订单）
// 只在对应表为空时写入，重启不会重复灌数据
func SeedDemoData(db *gorm.DB) {
	seedUsers(db)
	seedCatalog(db)
	seedOrders(db)
}

// seedUsers 内置演示账号
// 密码入库前统一 bcrypt 哈希，演示账号也不例外
func seedUsers(db *gorm.DB) {
	var count int64
	db.Model(&model.SysUser{}).Count(&count)
	if count > 0 {
		return
	}

	users := []struct {
		email    string
		name     string
		role     string
		password string
	}{
		{"admin@stylehub.com", "Admin User", model.RoleAdmin, "admin123"},
		{"staff@stylehub.com", "Staff Member", model.RoleStaff, "staff123"},
		{"customer@stylehub.com", "John Customer", model.RoleCustomer, "customer123"},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("种子用户密码哈希失败: %v", err)
		}
		db.Create(&model.SysUser{
			Email:    u.email,
			Name:     u.name,
			Role:     u.role,
			Password: string(hash),
			IsActive: true,
		})
	}
	log.Printf("[Seed] 写入演示账号 %d 个", len(users))
}

// seedCatalog 商品、库存、评价
func seedCatalog(db *gorm.DB) {
	var count int64
	db.Model(&model.Product{}).Count(&count)
	if count > 0 {
		return
	}

	products := []model.Product{
		{Name: "Classic White Tee", Description: "Soft cotton everyday t-shirt", Price: 29.99, Quantity: 100, Category: "Women's Fashion", Image: "https://images.stylehub.dev/p/white-tee.jpg"},
		{Name: "Denim Jacket", Description: "Vintage wash denim jacket", Price: 89.99, Quantity: 45, Category: "Men's Collection", Image: "https://images.stylehub.dev/p/denim-jacket.jpg"},
		{Name: "Leather Crossbody Bag", Description: "Full-grain leather crossbody bag", Price: 129.99, Quantity: 30, Category: "Accessories", Image: "https://images.stylehub.dev/p/crossbody.jpg"},
		{Name: "Canvas Sneakers", Description: "Low-top canvas sneakers", Price: 59.99, Quantity: 80, Category: "Footwear", Image: "https://images.stylehub.dev/p/sneakers.jpg"},
		{Name: "Silk Scarf", Description: "Hand-printed silk scarf", Price: 45.00, Quantity: 12, Category: "Accessories", Image: "https://images.stylehub.dev/p/scarf.jpg"},
	}
	for i := range products {
		db.Create(&products[i])
	}

	// 每个商品配一条库存记录；最后一条刻意压到低库存，方便看板和巡检演示
	stocks := []model.InventoryItem{
		{ProductID: products[0].ID, ProductName: products[0].Name, InStock: 100, Reserved: 15, ReorderPoint: 20},
		{ProductID: products[1].ID, ProductName: products[1].Name, InStock: 45, Reserved: 5, ReorderPoint: 10},
		{ProductID: products[2].ID, ProductName: products[2].Name, InStock: 30, Reserved: 8, ReorderPoint: 10},
		{ProductID: products[3].ID, ProductName: products[3].Name, InStock: 80, Reserved: 0, ReorderPoint: 25},
		{ProductID: products[4].ID, ProductName: products[4].Name, InStock: 12, Reserved: 6, ReorderPoint: 8},
	}
	for i := range stocks {
		db.Create(&stocks[i])
	}

	reviews := []model.Review{
		{ProductID: products[0].ID, Author: "Emily Chen", Rating: 5, Content: "Perfect fit and super soft fabric!"},
		{ProductID: products[1].ID, Author: "Marcus Lee", Rating: 4, Content: "Great jacket, runs slightly large."},
		{ProductID: products[3].ID, Author: "Sara Kim", Rating: 5, Content: "My go-to sneakers for everything."},
	}
	for i := range reviews {
		db.Create(&reviews[i])
	}

	log.Printf("[Seed] 写入商品 %d / 库存 %d / 评价 %d", len(products), len(stocks), len(reviews))
}

// seedOrders 演示订单，金额不变量在种子里同样成立
func seedOrders(db *gorm.DB) {
	var count int64
	db.Model(&model.Order{}).Count(&count)
	if count > 0 {
		return
	}

	orders := []model.Order{
		{
			OrderNumber:     "SH-DEMO0001",
			CustomerName:    "Alice Johnson",
			CustomerEmail:   "alice@example.com",
			ShippingAddress: "123 Market St, San Francisco, CA 94103",
			Status:          model.OrderStatusProcessing,
			Items: []model.OrderItem{
				{ProductID: 1, Name: "Classic White Tee", Quantity: 2, Price: 29.99, Subtotal: 59.98},
				{ProductID: 3, Name: "Leather Crossbody Bag", Quantity: 1, Price: 129.99, Subtotal: 129.99},
			},
			Total: 189.97,
		},
		{
			OrderNumber:     "SH-DEMO0002",
			CustomerName:    "Bob Smith",
			CustomerEmail:   "bob@example.com",
			ShippingAddress: "456 Oak Ave, Portland, OR 97205",
			Status:          model.OrderStatusPending,
			Items: []model.OrderItem{
				{ProductID: 4, Name: "Canvas Sneakers", Quantity: 1, Price: 59.99, Subtotal: 59.99},
			},
			Total: 59.99,
		},
	}
	for i := range orders {
		db.Create(&orders[i])
	}

	log.Printf("[Seed] 写入演示订单 %d 笔", len(orders))
}
