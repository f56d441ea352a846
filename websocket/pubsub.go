package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	// Redis频道前缀
	channelPrefixCourier = "notification:courier:"    // notification:courier:{courier_id}
	channelCourierBulk   = "notification:courier:all" // 全员广播频道
)

// PubSubManager 管理Redis Pub/Sub，用于跨进程通知推送
type PubSubManager struct {
	redisClient *redis.Client
	hub         *Hub
	ctx         context.Context
	cancel      context.CancelFunc
}

// CourierPushMessage WebSocket推送消息（通过Redis传输）
type CourierPushMessage struct {
	CourierID int64   `json:"courier_id"` // 0 表示全员广播
	Message   Message `json:"message"`
}

// NewPubSubManager 创建PubSub管理器
func NewPubSubManager(redisAddr string, redisPassword string, hub *Hub) (*PubSubManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
	})

	// 测试连接
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	manager := &PubSubManager{
		redisClient: client,
		hub:         hub,
		ctx:         ctx,
		cancel:      cancel,
	}

	return manager, nil
}

// Start 启动订阅（监听所有骑手的通知频道）
func (m *PubSubManager) Start() {
	pubsub := m.redisClient.PSubscribe(m.ctx, channelPrefixCourier+"*")

	go func() {
		defer pubsub.Close()

		log.Info().Msg("WebSocket PubSub started, listening for courier push requests")

		for {
			select {
			case <-m.ctx.Done():
				log.Info().Msg("WebSocket PubSub stopped")
				return
			default:
				msg, err := pubsub.ReceiveMessage(m.ctx)
				if err != nil {
					if m.ctx.Err() != nil {
						return
					}
					log.Error().Err(err).Msg("receive pubsub message failed")
					time.Sleep(time.Second)
					continue
				}

				m.handlePubSubMessage(msg.Payload)
			}
		}
	}()
}

// Stop 停止订阅
func (m *PubSubManager) Stop() {
	m.cancel()
	m.redisClient.Close()
}

// handlePubSubMessage 处理接收到的消息
func (m *PubSubManager) handlePubSubMessage(payload string) {
	var pushMsg CourierPushMessage
	if err := json.Unmarshal([]byte(payload), &pushMsg); err != nil {
		log.Error().Err(err).Str("payload", payload).Msg("unmarshal pubsub message failed")
		return
	}

	if pushMsg.CourierID == 0 {
		m.hub.BroadcastToAllCouriers(pushMsg.Message)
		log.Debug().
			Str("type", pushMsg.Message.Type).
			Int("online", m.hub.OnlineCourierCount()).
			Msg("broadcasted message to all couriers via WebSocket")
		return
	}

	if m.hub.IsCourierOnline(pushMsg.CourierID) {
		m.hub.SendToCourier(pushMsg.CourierID, pushMsg.Message)
		log.Debug().
			Int64("courier_id", pushMsg.CourierID).
			Str("type", pushMsg.Message.Type).
			Msg("pushed message to courier via WebSocket")
	} else {
		log.Debug().
			Int64("courier_id", pushMsg.CourierID).
			Msg("courier offline, skip WebSocket push")
	}
}

// PublishCourierPush 发布骑手推送请求（由worker调用）
func PublishCourierPush(ctx context.Context, redisClient *redis.Client, courierID int64, message Message) error {
	pushMsg := CourierPushMessage{
		CourierID: courierID,
		Message:   message,
	}

	payload, err := json.Marshal(pushMsg)
	if err != nil {
		return err
	}

	channel := channelCourierBulk
	if courierID > 0 {
		channel = fmt.Sprintf("%s%d", channelPrefixCourier, courierID)
	}

	return redisClient.Publish(ctx, channel, payload).Err()
}
