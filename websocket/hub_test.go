package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testClient(hub *Hub, userID, courierID int64) *Client {
	return &Client{
		info: ClientInfo{
			UserID:    userID,
			CourierID: courierID,
		},
		hub:  hub,
		send: make(chan Message, 256),
		done: make(chan struct{}),
	}
}

func TestNewHub(t *testing.T) {
	ctx := context.Background()
	hub := NewHub(ctx)

	require.NotNil(t, hub)
	require.NotNil(t, hub.couriers)
	require.NotNil(t, hub.register)
	require.NotNil(t, hub.unregister)
	require.NotNil(t, hub.broadcast)
}

func TestHub_RegisterAndUnregisterCourier(t *testing.T) {
	ctx := context.Background()
	hub := NewHub(ctx)

	// 启动 Hub
	go hub.Run()
	defer hub.Shutdown()

	// 创建骑手客户端（无实际连接，用于测试）
	client := testClient(hub, 1, 100)

	// 注册
	hub.Register(client)
	time.Sleep(50 * time.Millisecond) // 等待处理

	require.True(t, hub.IsCourierOnline(100))
	require.Equal(t, 1, hub.OnlineCourierCount())

	// 注销
	hub.Unregister(client)
	time.Sleep(50 * time.Millisecond)

	require.False(t, hub.IsCourierOnline(100))
	require.Equal(t, 0, hub.OnlineCourierCount())
}

func TestHub_ReplaceOldConnection(t *testing.T) {
	ctx := context.Background()
	hub := NewHub(ctx)

	go hub.Run()
	defer hub.Shutdown()

	oldClient := testClient(hub, 1, 100)
	hub.Register(oldClient)
	time.Sleep(50 * time.Millisecond)

	require.True(t, hub.IsCourierOnline(100))

	// 同一骑手的新连接应替换旧连接
	newClient := testClient(hub, 1, 100)
	hub.Register(newClient)
	time.Sleep(50 * time.Millisecond)

	select {
	case <-oldClient.done:
		// 预期行为
	default:
		t.Error("old client's done channel should be closed")
	}

	require.True(t, hub.IsCourierOnline(100))
	require.Equal(t, 1, hub.OnlineCourierCount())

	// 旧连接注销时不应误删新连接
	hub.Unregister(oldClient)
	time.Sleep(50 * time.Millisecond)

	require.True(t, hub.IsCourierOnline(100))
}

func TestHub_SendToCourier(t *testing.T) {
	ctx := context.Background()
	hub := NewHub(ctx)

	go hub.Run()
	defer hub.Shutdown()

	client := testClient(hub, 1, 100)
	hub.Register(client)
	time.Sleep(50 * time.Millisecond)

	data, err := json.Marshal(map[string]int64{"amount": 500})
	require.NoError(t, err)

	hub.SendToCourier(100, Message{
		Type:      MessageTypeEarnings,
		Data:      data,
		Timestamp: time.Now(),
	})

	select {
	case msg := <-client.send:
		require.Equal(t, MessageTypeEarnings, msg.Type)
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}
}

func TestHub_BroadcastToAllCouriers(t *testing.T) {
	ctx := context.Background()
	hub := NewHub(ctx)

	go hub.Run()
	defer hub.Shutdown()

	clients := []*Client{
		testClient(hub, 1, 100),
		testClient(hub, 2, 200),
		testClient(hub, 3, 300),
	}
	for _, c := range clients {
		hub.Register(c)
	}
	time.Sleep(50 * time.Millisecond)

	hub.BroadcastToAllCouriers(Message{
		Type:      MessageTypeCacheStale,
		Timestamp: time.Now(),
	})

	for _, c := range clients {
		select {
		case msg := <-c.send:
			require.Equal(t, MessageTypeCacheStale, msg.Type)
		case <-time.After(time.Second):
			t.Fatal("broadcast not delivered to every courier")
		}
	}
}
