package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stylehub_dev_v1_202601/internal/api/dto"
	"stylehub_dev_v1_202601/internal/service"
)

type OrderController struct {
	orderService *service.OrderService
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// ==================== 查询接口 ====================

// GetOrders 获取订单列表
// @Summary 订单列表（admin/staff）
// @Tags Order
// @Security BearerAuth
// @Param status query string false "状态筛选"
// @Param keyword query string false "订单号/客户搜索"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} dto.OrderListResp
// @Router /api/orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	status := c.Query("status")
	keyword := c.Query("keyword")

	orders, total, err := ctrl.orderService.ListOrders(c.Request.Context(), status, keyword, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	respList := make([]dto.OrderResp, 0, len(orders))
	for i := range orders {
		respList = append(respList, ctrl.orderService.ToOrderResp(&orders[i]))
	}

	c.JSON(http.StatusOK, dto.OrderListResp{
		Code:     0,
		Message:  "success",
		Data:     respList,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetOrder 获取订单详情
// @Summary 单个订单详情（admin/staff）
// @Tags Order
// @Security BearerAuth
// @Param id path int true "订单ID"
// @Success 200 {object} dto.OrderResp
// @Router /api/orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的订单ID"})
		return
	}

	order, err := ctrl.orderService.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"code": 404, "message": "订单不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.orderService.ToOrderResp(order),
	})
}

// ==================== 管理接口 ====================

// CreateOrder 创建订单
// @Summary 创建订单（admin/staff），subtotal/total 下单时一次算定
// @Tags Order
// @Accept json
// @Security BearerAuth
// @Param body body dto.OrderCreateRequest true "订单信息"
// @Success 200 {object} dto.OrderResp
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req dto.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}

	order, err := ctrl.orderService.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "创建失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.orderService.ToOrderResp(order),
	})
}

// UpdateOrderStatus 更新订单状态
// @Summary 更新订单状态（admin/staff）；五种状态任意流转，id 不存在时静默跳过
// @Tags Order
// @Accept json
// @Security BearerAuth
// @Param id path int true "订单ID"
// @Param body body dto.OrderStatusUpdateRequest true "状态参数"
// @Success 200 {object} map[string]interface{}
// @Router /api/orders/{id}/status [put]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的订单ID"})
		return
	}

	var req dto.OrderStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}

	if err := ctrl.orderService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "更新失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}
