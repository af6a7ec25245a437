package service

import (
	"context"

	"stylehub_dev_v1_202601/internal/api/dto"
	"stylehub_dev_v1_202601/internal/model"
	"stylehub_dev_v1_202601/internal/repository"
)

// ==================== ProductService 商品服务 ====================

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	auditSvc    *AuditService
}

// NewProductService 创建商品服务
func NewProductService(
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
	auditSvc *AuditService,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		auditSvc:    auditSvc,
	}
}

// ==================== 查询 ====================

// ListProducts 商品列表（后台管理和门店共用）
func (s *ProductService) ListProducts(ctx context.Context, keyword, category string, page, pageSize int) ([]model.Product, int64, error) {
	return s.productRepo.List(ctx, repository.ProductFilter{
		Keyword:  keyword,
		Category: category,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetProductByID 商品详情
func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListCategories 门店分类列表（商品表去重）
func (s *ProductService) ListCategories(ctx context.Context) ([]string, error) {
	return s.productRepo.Categories(ctx)
}

// ListReviews 门店评价列表
func (s *ProductService) ListReviews(ctx context.Context, limit int) ([]model.Review, error) {
	return s.reviewRepo.List(ctx, limit)
}

// ==================== 写入 ====================

// CreateProduct 创建商品，ID 由数据库自增分配
func (s *ProductService) CreateProduct(ctx context.Context, req *dto.ProductCreateRequest) (*model.Product, error) {
	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Image:       req.Image,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, "product", product.ID, model.AuditActionCreate, "创建商品 "+product.Name, nil, product)
	return product, nil
}

// UpdateProduct 部分更新商品
// id 不存在时静默跳过，不返回错误，与历史行为一致
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req *dto.ProductUpdateRequest) error {
	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}

	if len(fields) == 0 {
		return nil
	}

	// 变更前快照只用于审计，查不到说明 id 不存在，直接走静默空操作
	before, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.UpdateFields(ctx, id, fields); err != nil {
		return err
	}

	if before != nil {
		after, _ := s.productRepo.GetByID(ctx, id)
		s.auditSvc.Record(ctx, "product", id, model.AuditActionUpdate, "更新商品 "+before.Name, before, after)
	}
	return nil
}

// DeleteProduct 删除商品（软删），重复删除为幂等空操作
// 注意：不级联清理库存和历史订单，历史订单里的商品信息是下单时的快照
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	before, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if before != nil {
		s.auditSvc.Record(ctx, "product", id, model.AuditActionDelete, "删除商品 "+before.Name, before, nil)
	}
	return nil
}

// ==================== 响应转换 ====================

// ToProductResp 模型转响应
func (s *ProductService) ToProductResp(p *model.Product) dto.ProductResp {
	return dto.ProductResp{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToReviewResp 评价转响应
func (s *ProductService) ToReviewResp(r *model.Review) dto.ReviewResp {
	return dto.ReviewResp{
		ID:        r.ID,
		ProductID: r.ProductID,
		Author:    r.Author,
		Rating:    r.Rating,
		Content:   r.Content,
		Avatar:    r.Avatar,
		CreatedAt: r.CreatedAt,
	}
}
