package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/merrydance/routeplan/algorithm"
	"github.com/merrydance/routeplan/routegen"
)

// ==================== 路线生成 ====================

type generateRoutesRequest struct {
	Longitude    float64 `json:"longitude" binding:"required"`
	Latitude     float64 `json:"latitude" binding:"required"`
	IncludeBreak bool    `json:"include_break"`
	// Algorithm 指定算法，缺省用服务配置
	Algorithm string `json:"algorithm" binding:"omitempty,oneof=greedy optimal"`
	// Force 跳过缓存强制重新生成
	Force bool `json:"force"`
}

type generateRoutesResponse struct {
	Previews           []algorithm.RoutePreview `json:"previews"`
	AvailableTaskCount int                      `json:"available_task_count"`
	GeneratedAt        time.Time                `json:"generated_at"`
	ExpiresAt          time.Time                `json:"expires_at"`
	FromCache          bool                     `json:"from_cache"`
}

// generateRoutes godoc
// @Summary 生成路线预览
// @Description 按骑手当前位置与车型生成多个时长档位的路线预览。
// @Description 结果短期缓存；其他请求正在生成时会等待并复用其结果。
// @Tags 路线
// @Accept json
// @Produce json
// @Param request body generateRoutesRequest true "骑手当前位置"
// @Success 200 {object} generateRoutesResponse
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 403 {object} ErrorResponse "未注册骑手"
// @Failure 503 {object} ErrorResponse "生成超时"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/routes/generate [post]
// @Security BearerAuth
func (server *Server) generateRoutes(ctx *gin.Context) {
	var req generateRoutesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	courier, ok := server.loadCourier(ctx)
	if !ok {
		return
	}
	if !courier.IsOnline {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("请先上线再生成路线")))
		return
	}

	result, err := server.routeGen.Generate(ctx, routegen.GenerateRequest{
		CourierID:   courier.ID,
		VehicleType: courier.VehicleType,
		Start: algorithm.Location{
			Longitude: req.Longitude,
			Latitude:  req.Latitude,
		},
		IncludeBreak: req.IncludeBreak,
		Algorithm:    req.Algorithm,
		Force:        req.Force,
	})
	if err != nil {
		if errors.Is(err, routegen.ErrGenerationTimeout) {
			ctx.JSON(http.StatusServiceUnavailable, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, generateRoutesResponse{
		Previews:           result.Previews,
		AvailableTaskCount: result.AvailableTaskCount,
		GeneratedAt:        result.GeneratedAt,
		ExpiresAt:          result.ExpiresAt,
		FromCache:          result.FromCache,
	})
}
