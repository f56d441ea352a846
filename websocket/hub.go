package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Message 通过WebSocket发送的消息结构
type Message struct {
	Type      string          `json:"type"`      // 消息类型：route_update/earnings/ping/pong
	Data      json.RawMessage `json:"data"`      // 消息数据
	Timestamp time.Time       `json:"timestamp"` // 消息时间戳
}

// 推送消息类型
const (
	MessageTypeRouteUpdate = "route_update" // 路线变更（订单被移出、重新排序等）
	MessageTypeEarnings    = "earnings"     // 收入入账
	MessageTypeCacheStale  = "cache_stale"  // 路线预览已失效，建议重新生成
)

// ClientInfo 客户端信息
type ClientInfo struct {
	UserID    int64 // 用户ID
	CourierID int64 // 骑手ID
}

// Hub 管理所有骑手的WebSocket连接
type Hub struct {
	// 注册的客户端，按骑手ID索引
	couriers map[int64]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan BroadcastMessage

	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
}

// BroadcastMessage 广播消息
type BroadcastMessage struct {
	CourierID int64 // 目标骑手ID，0表示广播给所有在线骑手
	Message   Message
}

// NewHub 创建新的Hub
func NewHub(ctx context.Context) *Hub {
	ctx, cancel := context.WithCancel(ctx)
	return &Hub{
		couriers:   make(map[int64]*Client),
		register:   make(chan *Client, 10),
		unregister: make(chan *Client, 10),
		broadcast:  make(chan BroadcastMessage, 100),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run 启动Hub，处理注册、注销和广播
func (h *Hub) Run() {
	log.Info().Msg("WebSocket Hub started")
	defer log.Info().Msg("WebSocket Hub stopped")

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case msg := <-h.broadcast:
			h.broadcastMessage(msg)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, exists := h.couriers[client.info.CourierID]; exists {
		// 同一骑手重复连接时关闭旧连接
		close(old.done)
	}
	h.couriers[client.info.CourierID] = client
	log.Info().
		Int64("courier_id", client.info.CourierID).
		Int64("user_id", client.info.UserID).
		Msg("Courier connected via WebSocket")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// 只有当 map 中的 client 就是当前要注销的 client 时才删除，
	// 避免新连接替换旧连接后，旧连接注销时删除了新连接
	if existing, exists := h.couriers[client.info.CourierID]; exists && existing == client {
		delete(h.couriers, client.info.CourierID)
		client.closeOnce.Do(func() {
			close(client.send)
		})
		log.Info().
			Int64("courier_id", client.info.CourierID).
			Msg("Courier disconnected from WebSocket")
	}
}

func (h *Hub) broadcastMessage(msg BroadcastMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if msg.CourierID == 0 {
		for _, client := range h.couriers {
			select {
			case client.send <- msg.Message:
			default:
				log.Warn().
					Int64("courier_id", client.info.CourierID).
					Msg("Courier send buffer full, dropping message")
			}
		}
		return
	}

	if client, exists := h.couriers[msg.CourierID]; exists {
		select {
		case client.send <- msg.Message:
		default:
			log.Warn().
				Int64("courier_id", msg.CourierID).
				Msg("Courier send buffer full, dropping message")
		}
	}
}

// Register 注册客户端到Hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister 从Hub注销客户端
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast 广播消息
func (h *Hub) Broadcast(msg BroadcastMessage) {
	select {
	case h.broadcast <- msg:
	default:
		log.Warn().Msg("Broadcast channel full, dropping message")
	}
}

// SendToCourier 发送消息给特定骑手
func (h *Hub) SendToCourier(courierID int64, msg Message) {
	h.Broadcast(BroadcastMessage{
		CourierID: courierID,
		Message:   msg,
	})
}

// BroadcastToAllCouriers 广播消息给所有在线骑手
func (h *Hub) BroadcastToAllCouriers(msg Message) {
	h.Broadcast(BroadcastMessage{
		CourierID: 0,
		Message:   msg,
	})
}

// IsCourierOnline 判断骑手是否在线
func (h *Hub) IsCourierOnline(courierID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.couriers[courierID]
	return exists
}

// OnlineCourierCount 当前在线骑手数
func (h *Hub) OnlineCourierCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.couriers)
}

// Shutdown 关闭Hub及所有连接
func (h *Hub) Shutdown() {
	h.mu.Lock()
	for _, client := range h.couriers {
		client.closeOnce.Do(func() {
			close(client.send)
		})
	}
	h.couriers = make(map[int64]*Client)
	h.mu.Unlock()

	h.cancel()
}
