package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla_websocket "github.com/gorilla/websocket"
	"github.com/merrydance/routeplan/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = gorilla_websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 生产环境需要验证Origin
	},
}

// handleWebSocket godoc
// @Summary WebSocket连接端点
// @Description 将HTTP连接升级为WebSocket，推送路线变更、收入入账与缓存失效通知
// @Tags 骑手
// @Produce json
// @Param token query string false "Authentication token (required if Authorization header is missing)"
// @Success 101 "协议升级成功"
// @Failure 400 {object} ErrorResponse "骑手未上线"
// @Failure 401 {object} ErrorResponse "未授权"
// @Failure 403 {object} ErrorResponse "未注册骑手"
// @Router /v1/ws [get]
// @Security BearerAuth
func (server *Server) handleWebSocket(ctx *gin.Context) {
	courier, ok := server.loadCourier(ctx)
	if !ok {
		return
	}

	// 下线的骑手不需要实时推送
	if !courier.IsOnline {
		ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("请先上线才能接收实时推送")))
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := websocket.NewClient(server.wsHub, conn, websocket.ClientInfo{
		UserID:    courier.UserID,
		CourierID: courier.ID,
	})

	server.wsHub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	UpdateWSMetrics(server.wsHub.OnlineCourierCount())

	log.Info().
		Int64("courier_id", courier.ID).
		Msg("WebSocket connection established")
}
