package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/merrydance/routeplan/algorithm"
	db "github.com/merrydance/routeplan/db/sqlc"
	"github.com/merrydance/routeplan/worker"
	"github.com/rs/zerolog/log"
)

// ==================== 运力池任务 ====================

type createDeliveryTaskRequest struct {
	PickupAddress     string    `json:"pickup_address" binding:"required,max=200"`
	PickupCity        string    `json:"pickup_city" binding:"required,max=50"`
	PickupContact     string    `json:"pickup_contact" binding:"required,max=50"`
	PickupLongitude   float64   `json:"pickup_longitude" binding:"required"`
	PickupLatitude    float64   `json:"pickup_latitude" binding:"required"`
	DeliveryAddress   string    `json:"delivery_address" binding:"required,max=200"`
	DeliveryContact   string    `json:"delivery_contact" binding:"required,max=50"`
	DeliveryLongitude float64   `json:"delivery_longitude" binding:"required"`
	DeliveryLatitude  float64   `json:"delivery_latitude" binding:"required"`
	SizeClass         string    `json:"size_class" binding:"required,validSizeClass"`
	OrderValue        int64     `json:"order_value" binding:"required,min=1"`
	CourierEarning    int64     `json:"courier_earning" binding:"required,min=1"`
	Deadline          time.Time `json:"deadline" binding:"required"`
}

type deliveryTaskResponse struct {
	ID                int64     `json:"id"`
	PickupAddress     string    `json:"pickup_address"`
	PickupLongitude   float64   `json:"pickup_longitude"`
	PickupLatitude    float64   `json:"pickup_latitude"`
	DeliveryAddress   string    `json:"delivery_address"`
	DeliveryLongitude float64   `json:"delivery_longitude"`
	DeliveryLatitude  float64   `json:"delivery_latitude"`
	SizeClass         string    `json:"size_class"`
	OrderValue        int64     `json:"order_value"`
	CourierEarning    int64     `json:"courier_earning"`
	Deadline          time.Time `json:"deadline"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

func newDeliveryTaskResponse(task db.DeliveryTask) deliveryTaskResponse {
	return deliveryTaskResponse{
		ID:                task.ID,
		PickupAddress:     task.PickupAddress,
		PickupLongitude:   task.PickupLongitude,
		PickupLatitude:    task.PickupLatitude,
		DeliveryAddress:   task.DeliveryAddress,
		DeliveryLongitude: task.DeliveryLongitude,
		DeliveryLatitude:  task.DeliveryLatitude,
		SizeClass:         task.SizeClass,
		OrderValue:        task.OrderValue,
		CourierEarning:    task.CourierEarning,
		Deadline:          task.Deadline,
		Status:            task.Status,
		CreatedAt:         task.CreatedAt,
	}
}

// createDeliveryTask godoc
// @Summary 录入配送任务
// @Description 调度系统把新订单写入运力池，同时让所有骑手的路线缓存失效
// @Tags 任务池
// @Accept json
// @Produce json
// @Param request body createDeliveryTaskRequest true "配送任务"
// @Success 201 {object} deliveryTaskResponse "录入成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/tasks [post]
func (server *Server) createDeliveryTask(ctx *gin.Context) {
	var req createDeliveryTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	task, err := server.store.CreateDeliveryTask(ctx, db.CreateDeliveryTaskParams{
		PickupAddress:     req.PickupAddress,
		PickupCity:        req.PickupCity,
		PickupContact:     req.PickupContact,
		PickupLongitude:   req.PickupLongitude,
		PickupLatitude:    req.PickupLatitude,
		DeliveryAddress:   req.DeliveryAddress,
		DeliveryContact:   req.DeliveryContact,
		DeliveryLongitude: req.DeliveryLongitude,
		DeliveryLatitude:  req.DeliveryLatitude,
		SizeClass:         req.SizeClass,
		OrderValue:        req.OrderValue,
		CourierEarning:    req.CourierEarning,
		Deadline:          req.Deadline,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	// 任务池变了，所有缓存的预览都不再可信
	if server.taskDistributor != nil {
		err = server.taskDistributor.DistributeTaskInvalidateRouteCache(ctx, &worker.PayloadInvalidateRouteCache{
			CourierID: 0,
			Reason:    "task_created",
		}, asynq.Queue(worker.QueueCritical))
		if err != nil {
			log.Warn().Err(err).Int64("task_id", task.ID).Msg("failed to distribute cache invalidation")
		}
	}

	ctx.JSON(http.StatusCreated, newDeliveryTaskResponse(task))
}

type listAvailableTasksRequest struct {
	Limit int32 `form:"limit,default=50" binding:"min=1,max=200"`
}

// listAvailableTasks godoc
// @Summary 查询可接任务
// @Description 按截止时间升序返回当前骑手车型装得下的可接配送任务
// @Tags 任务池
// @Produce json
// @Param limit query int false "返回数量上限（默认50，最大200）"
// @Success 200 {array} deliveryTaskResponse
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 404 {object} ErrorResponse "骑手档案不存在"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/tasks/available [get]
// @Security BearerAuth
func (server *Server) listAvailableTasks(ctx *gin.Context) {
	var req listAvailableTasksRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	courier, ok := server.loadCourier(ctx)
	if !ok {
		return
	}

	profile := algorithm.ProfileForVehicle(algorithm.VehicleType(courier.VehicleType))
	classes := profile.CompatibleSizeClasses()
	sizeClasses := make([]string, len(classes))
	for i, c := range classes {
		sizeClasses[i] = string(c)
	}

	tasks, err := server.store.ListAvailableDeliveryTasks(ctx, db.ListAvailableDeliveryTasksParams{
		SizeClasses: sizeClasses,
		LimitCount:  req.Limit,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	resp := make([]deliveryTaskResponse, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, newDeliveryTaskResponse(task))
	}
	ctx.JSON(http.StatusOK, resp)
}
