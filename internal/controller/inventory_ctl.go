package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stylehub_dev_v1_202601/internal/api/dto"
	"stylehub_dev_v1_202601/internal/service"
)

type InventoryController struct {
	inventoryService *service.InventoryService
}

func NewInventoryController(inventoryService *service.InventoryService) *InventoryController {
	return &InventoryController{inventoryService: inventoryService}
}

// GetInventory 获取库存列表
// @Summary 库存列表（admin/staff），available/low_stock 为现算衍生值
// @Tags Inventory
// @Security BearerAuth
// @Param keyword query string false "商品名搜索"
// @Success 200 {object} dto.InventoryListResp
// @Router /api/inventory [get]
func (ctrl *InventoryController) GetInventory(c *gin.Context) {
	keyword := c.Query("keyword")

	items, err := ctrl.inventoryService.ListInventory(c.Request.Context(), keyword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.InventoryListResp{
		Code:    0,
		Message: "success",
		Data:    items,
		Total:   int64(len(items)),
	})
}

// GetLowStock 获取低库存清单
// @Summary 低库存清单（admin/staff）
// @Tags Inventory
// @Security BearerAuth
// @Success 200 {object} dto.InventoryListResp
// @Router /api/inventory/low-stock [get]
func (ctrl *InventoryController) GetLowStock(c *gin.Context) {
	items, err := ctrl.inventoryService.LowStockItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.InventoryListResp{
		Code:    0,
		Message: "success",
		Data:    items,
		Total:   int64(len(items)),
	})
}

// UpdateInventory 更新库存
// @Summary 更新在库数量与补货阈值（admin/staff）；product_id 不存在时静默跳过
// @Tags Inventory
// @Accept json
// @Security BearerAuth
// @Param product_id path int true "商品ID"
// @Param body body dto.InventoryUpdateRequest true "库存参数"
// @Success 200 {object} map[string]interface{}
// @Router /api/inventory/{product_id} [put]
func (ctrl *InventoryController) UpdateInventory(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "无效的商品ID"})
		return
	}

	var req dto.InventoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": err.Error()})
		return
	}

	if err := ctrl.inventoryService.UpdateStock(c.Request.Context(), productID, &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "更新失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success"})
}
