package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/merrydance/routeplan/algorithm"
	db "github.com/merrydance/routeplan/db/sqlc"
	"github.com/merrydance/routeplan/routegen"
	"github.com/merrydance/routeplan/worker"
	"github.com/rs/zerolog/log"
)

// ==================== 路线生命周期 ====================

type routeStopResponse struct {
	ID               int64      `json:"id"`
	Seq              int32      `json:"seq"`
	Kind             string     `json:"kind"`
	TaskID           *int64     `json:"task_id,omitempty"`
	Longitude        float64    `json:"longitude"`
	Latitude         float64    `json:"latitude"`
	Address          string     `json:"address"`
	Status           string     `json:"status"`
	Earning          int64      `json:"earning"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
	ActualArrival    *time.Time `json:"actual_arrival,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

type routeResponse struct {
	ID                      int64               `json:"id"`
	Status                  string              `json:"status"`
	TargetMinutes           int32               `json:"target_minutes"`
	CurrentStopIndex        int32               `json:"current_stop_index"`
	CompletedStops          int32               `json:"completed_stops"`
	EstimatedMinutes        int32               `json:"estimated_minutes"`
	EstimatedDistanceMeters int32               `json:"estimated_distance_meters"`
	EstimatedEarnings       int64               `json:"estimated_earnings"`
	ActualEarnings          int64               `json:"actual_earnings"`
	StartedAt               time.Time           `json:"started_at"`
	EndedAt                 *time.Time          `json:"ended_at,omitempty"`
	Stops                   []routeStopResponse `json:"stops"`
}

func newRouteStopResponse(stop db.RouteStop) routeStopResponse {
	resp := routeStopResponse{
		ID:        stop.ID,
		Seq:       stop.Seq,
		Kind:      stop.Kind,
		Longitude: stop.Longitude,
		Latitude:  stop.Latitude,
		Address:   stop.Address,
		Status:    stop.Status,
		Earning:   stop.Earning,
	}
	if stop.TaskID.Valid {
		resp.TaskID = &stop.TaskID.Int64
	}
	if stop.EstimatedArrival.Valid {
		resp.EstimatedArrival = &stop.EstimatedArrival.Time
	}
	if stop.ActualArrival.Valid {
		resp.ActualArrival = &stop.ActualArrival.Time
	}
	if stop.CompletedAt.Valid {
		resp.CompletedAt = &stop.CompletedAt.Time
	}
	return resp
}

func newRouteResponse(route db.CourierRoute, stops []db.RouteStop) routeResponse {
	resp := routeResponse{
		ID:                      route.ID,
		Status:                  route.Status,
		TargetMinutes:           route.TargetMinutes,
		CurrentStopIndex:        route.CurrentStopIndex,
		CompletedStops:          route.CompletedStops,
		EstimatedMinutes:        route.EstimatedMinutes,
		EstimatedDistanceMeters: route.EstimatedDistanceMeters,
		EstimatedEarnings:       route.EstimatedEarnings,
		ActualEarnings:          route.ActualEarnings,
		StartedAt:               route.StartedAt,
		Stops:                   make([]routeStopResponse, 0, len(stops)),
	}
	if route.EndedAt.Valid {
		resp.EndedAt = &route.EndedAt.Time
	}
	for _, stop := range stops {
		resp.Stops = append(resp.Stops, newRouteStopResponse(stop))
	}
	return resp
}

type claimRouteRequest struct {
	BucketMinutes int32   `json:"bucket_minutes" binding:"required,min=15,max=480"`
	Longitude     float64 `json:"longitude" binding:"required"`
	Latitude      float64 `json:"latitude" binding:"required"`
}

// claimRoute godoc
// @Summary 领取路线
// @Description 按选定的时长档位领取缓存中的路线预览。
// @Description 路线中所有订单原子领取，任何一单被抢走则整体失败。
// @Tags 路线
// @Accept json
// @Produce json
// @Param request body claimRouteRequest true "档位与当前位置"
// @Success 201 {object} routeResponse "领取成功"
// @Failure 400 {object} ErrorResponse "参数错误"
// @Failure 403 {object} ErrorResponse "未注册骑手"
// @Failure 409 {object} ErrorResponse "订单冲突或已有进行中路线"
// @Failure 410 {object} ErrorResponse "预览已过期"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/routes/claim [post]
// @Security BearerAuth
func (server *Server) claimRoute(ctx *gin.Context) {
	var req claimRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	courier, ok := server.loadCourier(ctx)
	if !ok {
		return
	}

	preview, err := server.routeGen.CachedPreview(ctx, courier.ID, int(req.BucketMinutes))
	if err != nil {
		switch {
		case errors.Is(err, routegen.ErrPreviewNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, routegen.ErrPreviewExpired):
			ctx.JSON(http.StatusGone, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	stops, err := server.buildClaimStops(ctx, preview)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	result, err := server.store.ClaimRouteTx(ctx, db.ClaimRouteTxParams{
		CourierID:               courier.ID,
		StartLongitude:          req.Longitude,
		StartLatitude:           req.Latitude,
		TargetMinutes:           req.BucketMinutes,
		EstimatedMinutes:        int32(preview.EstimatedMinutes),
		EstimatedDistanceMeters: int32(preview.EstimatedDistanceMeters),
		EstimatedEarnings:       preview.EstimatedEarnings,
		Stops:                   stops,
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRouteInProgress):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		case errors.Is(err, db.ErrTaskUnavailable):
			// 预览已不可兑现，让骑手重新生成
			server.invalidateCourierCache(ctx, courier.ID, "claim_conflict")
			ctx.JSON(http.StatusConflict, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	RecordRouteClaimed()

	// 这批任务离开了运力池，所有骑手的预览都要重算
	server.invalidateAllCaches(ctx, "route_claimed")

	ctx.JSON(http.StatusCreated, newRouteResponse(result.Route, result.Stops))
}

// buildClaimStops 把缓存预览转换为接单事务的站点参数。
// 预览只存相对到达时间，这里换算为绝对时间并补齐任务地址。
func (server *Server) buildClaimStops(ctx *gin.Context, preview *algorithm.RoutePreview) ([]db.ClaimStop, error) {
	tasks := make(map[int64]db.DeliveryTask)
	for _, stop := range preview.Stops {
		if stop.TaskID == 0 {
			continue
		}
		if _, ok := tasks[stop.TaskID]; ok {
			continue
		}
		task, err := server.store.GetDeliveryTask(ctx, stop.TaskID)
		if err != nil {
			return nil, err
		}
		tasks[stop.TaskID] = task
	}

	now := time.Now()
	stops := make([]db.ClaimStop, 0, len(preview.Stops))
	for _, stop := range preview.Stops {
		claim := db.ClaimStop{
			Kind:             string(stop.Kind),
			TaskID:           stop.TaskID,
			Longitude:        stop.Location.Longitude,
			Latitude:         stop.Location.Latitude,
			Earning:          stop.Earning,
			EstimatedArrival: now.Add(time.Duration(stop.EstimatedArrivalMin) * time.Minute),
			HandlingMinutes:  int32(server.routeGen.HandlingMinutes(stop.Kind)),
		}
		switch stop.Kind {
		case algorithm.StopPickup:
			claim.Address = tasks[stop.TaskID].PickupAddress
		case algorithm.StopDelivery:
			claim.Address = tasks[stop.TaskID].DeliveryAddress
		case algorithm.StopBreak:
			claim.Address = "原地休息"
			claim.HandlingMinutes = int32(preview.BreakMinutes)
		}
		stops = append(stops, claim)
	}
	return stops, nil
}

// getActiveRoute godoc
// @Summary 查询进行中的路线
// @Tags 路线
// @Produce json
// @Success 200 {object} routeResponse
// @Failure 403 {object} ErrorResponse "未注册骑手"
// @Failure 404 {object} ErrorResponse "没有进行中的路线"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/routes/active [get]
// @Security BearerAuth
func (server *Server) getActiveRoute(ctx *gin.Context) {
	courier, ok := server.loadCourier(ctx)
	if !ok {
		return
	}

	route, err := server.store.GetActiveRouteByCourier(ctx, courier.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("没有进行中的路线")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	stops, err := server.store.ListRouteStops(ctx, route.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newRouteResponse(route, stops))
}

type stopProgressRequest struct {
	Action string `json:"action" binding:"required,oneof=arrived completed skipped"`
}

type stopProgressResponse struct {
	Route          routeResponse `json:"route"`
	EarningsDelta  int64         `json:"earnings_delta"`
	RouteCompleted bool          `json:"route_completed"`
	NoChange       bool          `json:"no_change"`
}

// reportStopProgress godoc
// @Summary 上报站点进度
// @Description 上报到达、完成或跳过某个站点。重复上报幂等返回。
// @Description 到达会用实际时间重算后续站点的预计到达；完成最后一单会自动结束路线。
// @Tags 路线
// @Accept json
// @Produce json
// @Param id path int true "路线ID"
// @Param stop_id path int true "站点ID"
// @Param request body stopProgressRequest true "进度动作"
// @Success 200 {object} stopProgressResponse
// @Failure 400 {object} ErrorResponse "动作不合法"
// @Failure 403 {object} ErrorResponse "无权操作"
// @Failure 404 {object} ErrorResponse "路线或站点不存在"
// @Failure 409 {object} ErrorResponse "路线已结束"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/routes/{id}/stops/{stop_id}/progress [post]
// @Security BearerAuth
func (server *Server) reportStopProgress(ctx *gin.Context) {
	var req stopProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	routeID, stopID, ok := parseRouteStopIDs(ctx)
	if !ok {
		return
	}

	courier, ok := server.loadCourier(ctx)
	if !ok {
		return
	}

	result, err := server.store.RouteProgressTx(ctx, db.RouteProgressTxParams{
		RouteID:         routeID,
		CourierID:       courier.ID,
		StopID:          stopID,
		Action:          req.Action,
		Now:             time.Now(),
		EstimateMinutes: server.routeGen.EstimateFunc(ctx),
	})
	if err != nil {
		server.writeRouteTxError(ctx, err)
		return
	}

	// 跳过取货会把订单放回运力池
	if req.Action == db.StopActionSkipped {
		server.invalidateAllCaches(ctx, "task_released")
	}

	if result.EarningsDelta > 0 {
		server.notifyEarnings(ctx, courier.ID, result)
		// 送达也是运力池事件，缓存的预览随之失效
		server.invalidateAllCaches(ctx, "task_delivered")
	}
	if result.RouteCompleted {
		RecordRouteEnded("completed")
	}

	ctx.JSON(http.StatusOK, stopProgressResponse{
		Route:          newRouteResponse(result.Route, result.Stops),
		EarningsDelta:  result.EarningsDelta,
		RouteCompleted: result.RouteCompleted,
		NoChange:       result.NoChange,
	})
}

// postponePickup godoc
// @Summary 延后取货
// @Description 骑手装不下时把某个取货点连同其送达点移到路线末尾。
// @Description 要求骑手至少携带一单，否则延后没有意义。
// @Tags 路线
// @Produce json
// @Param id path int true "路线ID"
// @Param stop_id path int true "取货站点ID"
// @Success 200 {object} routeResponse
// @Failure 400 {object} ErrorResponse "没有已取订单或站点不可延后"
// @Failure 403 {object} ErrorResponse "无权操作"
// @Failure 404 {object} ErrorResponse "路线或站点不存在"
// @Failure 409 {object} ErrorResponse "路线已结束"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/routes/{id}/stops/{stop_id}/postpone [post]
// @Security BearerAuth
func (server *Server) postponePickup(ctx *gin.Context) {
	routeID, stopID, ok := parseRouteStopIDs(ctx)
	if !ok {
		return
	}

	courier, ok := server.loadCourier(ctx)
	if !ok {
		return
	}

	result, err := server.store.PostponePickupTx(ctx, db.PostponePickupTxParams{
		RouteID:         routeID,
		CourierID:       courier.ID,
		StopID:          stopID,
		Now:             time.Now(),
		EstimateMinutes: server.routeGen.EstimateFunc(ctx),
	})
	if err != nil {
		if errors.Is(err, db.ErrNothingCarried) {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		server.writeRouteTxError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newRouteResponse(result.Route, result.Stops))
}

// removeOrder godoc
// @Summary 从路线移除订单
// @Description 商家取消等场景下把订单的取送两站从路线移除。
// @Description 未送达的订单会释放回运力池；没有剩余工作时路线自动结束。
// @Tags 路线
// @Produce json
// @Param id path int true "路线ID"
// @Param task_id path int true "任务ID"
// @Success 200 {object} routeResponse
// @Failure 403 {object} ErrorResponse "无权操作"
// @Failure 404 {object} ErrorResponse "订单不在路线中"
// @Failure 409 {object} ErrorResponse "路线已结束"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/routes/{id}/orders/{task_id}/remove [post]
// @Security BearerAuth
func (server *Server) removeOrder(ctx *gin.Context) {
	routeID, ok := parsePathID(ctx, "id")
	if !ok {
		return
	}
	taskID, ok := parsePathID(ctx, "task_id")
	if !ok {
		return
	}

	courier, ok := server.loadCourier(ctx)
	if !ok {
		return
	}

	result, err := server.store.RemoveOrderTx(ctx, db.RemoveOrderTxParams{
		RouteID:         routeID,
		CourierID:       courier.ID,
		TaskID:          taskID,
		Now:             time.Now(),
		EstimateMinutes: server.routeGen.EstimateFunc(ctx),
	})
	if err != nil {
		if errors.Is(err, db.ErrTaskNotInRoute) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		server.writeRouteTxError(ctx, err)
		return
	}

	if result.ReleasedTask {
		server.invalidateAllCaches(ctx, "task_released")
	}
	if result.RouteCompleted {
		RecordRouteEnded("completed")
	}

	ctx.JSON(http.StatusOK, newRouteResponse(result.Route, result.Stops))
}

type abandonRouteRequest struct {
	Reason string `json:"reason" binding:"max=200"`
}

// abandonRoute godoc
// @Summary 放弃路线
// @Description 终止进行中的路线。未送达的订单释放回运力池，已完成部分的收入保留。
// @Tags 路线
// @Accept json
// @Produce json
// @Param id path int true "路线ID"
// @Param request body abandonRouteRequest false "放弃原因"
// @Success 200 {object} routeResponse
// @Failure 403 {object} ErrorResponse "无权操作"
// @Failure 404 {object} ErrorResponse "路线不存在"
// @Failure 409 {object} ErrorResponse "路线已结束"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /v1/routes/{id}/abandon [post]
// @Security BearerAuth
func (server *Server) abandonRoute(ctx *gin.Context) {
	var req abandonRouteRequest
	// 放弃原因可以省略
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
			return
		}
	}

	routeID, ok := parsePathID(ctx, "id")
	if !ok {
		return
	}

	courier, ok := server.loadCourier(ctx)
	if !ok {
		return
	}

	result, err := server.store.AbandonRouteTx(ctx, db.AbandonRouteTxParams{
		RouteID:   routeID,
		CourierID: courier.ID,
		Reason:    req.Reason,
	})
	if err != nil {
		server.writeRouteTxError(ctx, err)
		return
	}

	RecordRouteEnded("abandoned")
	if len(result.ReleasedTaskIDs) > 0 {
		server.invalidateAllCaches(ctx, "route_abandoned")
	}

	stops, err := server.store.ListRouteStops(ctx, result.Route.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newRouteResponse(result.Route, stops))
}

// writeRouteTxError 把路线事务的业务错误映射为HTTP状态码
func (server *Server) writeRouteTxError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, db.ErrNotRouteOwner):
		ctx.JSON(http.StatusForbidden, errorResponse(err))
	case errors.Is(err, db.ErrRouteNotActive):
		ctx.JSON(http.StatusConflict, errorResponse(err))
	case errors.Is(err, db.ErrStopNotInRoute), errors.Is(err, db.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, errorResponse(err))
	case errors.Is(err, db.ErrInvalidStopAction):
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
	default:
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
	}
}

func parsePathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("非法的路径参数 "+name)))
		return 0, false
	}
	return id, true
}

func parseRouteStopIDs(ctx *gin.Context) (routeID, stopID int64, ok bool) {
	routeID, ok = parsePathID(ctx, "id")
	if !ok {
		return 0, 0, false
	}
	stopID, ok = parsePathID(ctx, "stop_id")
	if !ok {
		return 0, 0, false
	}
	return routeID, stopID, true
}

// invalidateCourierCache 让单个骑手的路线缓存失效
func (server *Server) invalidateCourierCache(ctx *gin.Context, courierID int64, reason string) {
	if server.taskDistributor == nil {
		return
	}
	err := server.taskDistributor.DistributeTaskInvalidateRouteCache(ctx, &worker.PayloadInvalidateRouteCache{
		CourierID: courierID,
		Reason:    reason,
	}, asynq.Queue(worker.QueueCritical))
	if err != nil {
		log.Warn().Err(err).Int64("courier_id", courierID).Str("reason", reason).Msg("failed to distribute cache invalidation")
	}
}

// invalidateAllCaches 让所有骑手的路线缓存失效（运力池变化时）
func (server *Server) invalidateAllCaches(ctx *gin.Context, reason string) {
	if server.taskDistributor == nil {
		return
	}
	err := server.taskDistributor.DistributeTaskInvalidateRouteCache(ctx, &worker.PayloadInvalidateRouteCache{
		CourierID: 0,
		Reason:    reason,
	}, asynq.Queue(worker.QueueCritical))
	if err != nil {
		log.Warn().Err(err).Str("reason", reason).Msg("failed to distribute cache invalidation")
	}
}

// notifyEarnings 推送本单收入入账
func (server *Server) notifyEarnings(ctx *gin.Context, courierID int64, result db.RouteProgressTxResult) {
	if server.taskDistributor == nil {
		return
	}
	payload := &worker.PayloadNotifyEarnings{
		CourierID: courierID,
		RouteID:   result.Route.ID,
		Amount:    result.EarningsDelta,
	}
	if result.Stop.TaskID.Valid {
		payload.TaskID = result.Stop.TaskID.Int64
	}
	err := server.taskDistributor.DistributeTaskNotifyEarnings(ctx, payload)
	if err != nil {
		log.Warn().Err(err).Int64("courier_id", courierID).Msg("failed to distribute earnings notification")
	}
}
