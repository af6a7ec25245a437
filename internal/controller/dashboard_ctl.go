package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stylehub_dev_v1_202601/internal/service"
)

type DashboardController struct {
	dashboardService *service.DashboardService
	auditService     *service.AuditService
}

func NewDashboardController(
	dashboardService *service.DashboardService,
	auditService *service.AuditService,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		auditService:     auditService,
	}
}

// GetStats 看板统计
// @Summary 销售看板统计（仅 admin）
// @Tags Dashboard
// @Security BearerAuth
// @Success 200 {object} dto.DashboardStatsResp
// @Router /api/dashboard/stats [get]
func (ctrl *DashboardController) GetStats(c *gin.Context) {
	stats, err := ctrl.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "统计失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    stats,
	})
}

// GetAuditLogs 操作流水
// @Summary 管理端操作流水（仅 admin）
// @Tags Dashboard
// @Security BearerAuth
// @Param entity_type query string false "实体类型 product/inventory/order"
// @Param entity_id query int false "实体ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /api/dashboard/audit-logs [get]
func (ctrl *DashboardController) GetAuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	entityType := c.Query("entity_type")
	entityID, _ := strconv.ParseInt(c.DefaultQuery("entity_id", "0"), 10, 64)

	logs, total, err := ctrl.auditService.ListLogs(c.Request.Context(), entityType, entityID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "查询失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":      0,
		"message":   "success",
		"data":      logs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
