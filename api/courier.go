package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	db "github.com/merrydance/routeplan/db/sqlc"
	"github.com/merrydance/routeplan/token"
	"github.com/merrydance/routeplan/worker"
	"github.com/rs/zerolog/log"
)

// ==================== 骑手账户 ====================

type registerCourierRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	VehicleType string `json:"vehicle_type" binding:"required,validVehicle"`
}

type courierResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	VehicleType string    `json:"vehicle_type"`
	IsOnline    bool      `json:"is_online"`
	CreatedAt   time.Time `json:"created_at"`
}

func newCourierResponse(courier db.Courier) courierResponse {
	return courierResponse{
		ID:          courier.ID,
		UserID:      courier.UserID,
		Name:        courier.Name,
		VehicleType: courier.VehicleType,
		IsOnline:    courier.IsOnline,
		CreatedAt:   courier.CreatedAt,
	}
}

// loadCourier 根据令牌中的用户找到骑手档案
func (server *Server) loadCourier(ctx *gin.Context) (db.Courier, bool) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	courier, err := server.store.GetCourierByUserID(ctx, authPayload.UserID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusForbidden, errorResponse(errors.New("请先注册成为骑手")))
			return db.Courier{}, false
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return db.Courier{}, false
	}
	return courier, true
}

// registerCourier godoc
// @Summary 骑手注册
// @Description 为当前用户创建骑手档案，注册时指定车型
// @Tags 骑手
// @Accept json
// @Produce json
// @Param request body registerCourierRequest true "骑手注册信息"
// @Success 201 {object} courierResponse "注册成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 409 {object} ErrorResponse "重复注册"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/couriers/register [post]
// @Security BearerAuth
func (server *Server) registerCourier(ctx *gin.Context) {
	var req registerCourierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	// 检查是否已注册
	_, err := server.store.GetCourierByUserID(ctx, authPayload.UserID)
	if err == nil {
		ctx.JSON(http.StatusConflict, errorResponse(errors.New("您已注册成为骑手")))
		return
	}
	if !errors.Is(err, db.ErrRecordNotFound) {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	courier, err := server.store.CreateCourier(ctx, db.CreateCourierParams{
		UserID:      authPayload.UserID,
		Name:        req.Name,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(errors.New("您已注册成为骑手")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, newCourierResponse(courier))
}

// getCurrentCourier godoc
// @Summary 获取当前骑手信息
// @Tags 骑手
// @Produce json
// @Success 200 {object} courierResponse
// @Failure 403 {object} ErrorResponse "未注册骑手"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/couriers/me [get]
// @Security BearerAuth
func (server *Server) getCurrentCourier(ctx *gin.Context) {
	courier, ok := server.loadCourier(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newCourierResponse(courier))
}

// goOnline godoc
// @Summary 骑手上线
// @Description 上线后可生成路线并接收实时推送
// @Tags 骑手
// @Produce json
// @Success 200 {object} courierResponse
// @Failure 403 {object} ErrorResponse "未注册骑手"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/couriers/online [post]
// @Security BearerAuth
func (server *Server) goOnline(ctx *gin.Context) {
	server.setOnline(ctx, true)
}

// goOffline godoc
// @Summary 骑手下线
// @Tags 骑手
// @Produce json
// @Success 200 {object} courierResponse
// @Failure 403 {object} ErrorResponse "未注册骑手"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/couriers/offline [post]
// @Security BearerAuth
func (server *Server) goOffline(ctx *gin.Context) {
	server.setOnline(ctx, false)
}

func (server *Server) setOnline(ctx *gin.Context, online bool) {
	courier, ok := server.loadCourier(ctx)
	if !ok {
		return
	}

	updated, err := server.store.UpdateCourierOnline(ctx, db.UpdateCourierOnlineParams{
		ID:       courier.ID,
		IsOnline: online,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newCourierResponse(updated))
}

type updateVehicleRequest struct {
	VehicleType string `json:"vehicle_type" binding:"required,validVehicle"`
}

// updateVehicle godoc
// @Summary 更新骑手车型
// @Description 车型影响可携带的订单规格与行驶速度，更新后会使路线缓存失效
// @Tags 骑手
// @Accept json
// @Produce json
// @Param request body updateVehicleRequest true "车型"
// @Success 200 {object} courierResponse
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 403 {object} ErrorResponse "未注册骑手"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/couriers/vehicle [patch]
// @Security BearerAuth
func (server *Server) updateVehicle(ctx *gin.Context) {
	var req updateVehicleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	courier, ok := server.loadCourier(ctx)
	if !ok {
		return
	}

	updated, err := server.store.UpdateCourierVehicle(ctx, db.UpdateCourierVehicleParams{
		ID:          courier.ID,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// 车型变化会改变可行路线，让该骑手的缓存失效
	if server.taskDistributor != nil {
		err = server.taskDistributor.DistributeTaskInvalidateRouteCache(ctx, &worker.PayloadInvalidateRouteCache{
			CourierID: courier.ID,
			Reason:    "vehicle_changed",
		})
		if err != nil {
			log.Warn().Err(err).Int64("courier_id", courier.ID).Msg("failed to distribute cache invalidation")
		}
	}

	ctx.JSON(http.StatusOK, newCourierResponse(updated))
}
