package websocket

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/AzielCF/az-chatbox/infrastructure/valkey"
	"github.com/AzielCF/az-chatbox/pkg/notice"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	valkeylib "github.com/valkey-io/valkey-go"
)

const (
	CodeNotice          = "ADMIN_NOTICE"
	CodeFetchSettings   = "FETCH_SETTINGS"
	CodeSettingsListing = "LIST_SETTINGS"
)

type client struct{}

type BroadcastMessage struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Result   any    `json:"result"`
	SenderID string `json:"sender_id,omitempty"`
}

// NoticePayload is what admin dashboards receive for every notice.
type NoticePayload struct {
	Class string `json:"class"`
	HTML  string `json:"html"`
}

// SnapshotProvider answers FETCH_SETTINGS requests.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (map[string]string, error)
}

var (
	Clients    = make(map[*websocket.Conn]client)
	Register   = make(chan *websocket.Conn)
	Broadcast  = make(chan BroadcastMessage, 64)
	Unregister = make(chan *websocket.Conn)

	vkClient *valkey.Client
	wsChan   = "chatbox:ws_broadcast"
	localID  string
)

// SetValkeyClient initializes the distributed broadcast system
func SetValkeyClient(client *valkey.Client, serverID string) {
	vkClient = client
	localID = serverID
	if client != nil {
		wsChan = client.Key("ws_broadcast")
	}
}

// Notifier pushes admin notices to every connected dashboard.
type Notifier struct{}

// Notify queues n for broadcast. Invalid notices and a full queue are dropped.
func (Notifier) Notify(n notice.Notice) {
	html := n.Render()
	if html == "" {
		logrus.Warnf("[WS] Dropping notice with unknown class %q", n.Class)
		return
	}
	msg := BroadcastMessage{
		Code:    CodeNotice,
		Message: n.Message,
		Result:  NoticePayload{Class: string(n.Class), HTML: html},
	}
	select {
	case Broadcast <- msg:
	default:
		logrus.Warn("[WS] Broadcast queue full, notice dropped")
	}
}

func handleRegister(conn *websocket.Conn) {
	Clients[conn] = client{}
	logrus.Debug("[WS] Connection registered")
}

func handleUnregister(conn *websocket.Conn) {
	delete(Clients, conn)
	logrus.Debug("[WS] Connection unregistered")
}

func broadcastToLocal(message BroadcastMessage) {
	marshalMessage, err := json.Marshal(message)
	if err != nil {
		logrus.Errorf("[WS] Marshal error: %v", err)
		return
	}

	for conn := range Clients {
		if err := conn.WriteMessage(websocket.TextMessage, marshalMessage); err != nil {
			logrus.Errorf("[WS] Write error: %v", err)
			closeConnection(conn)
		}
	}
}

func publishToValkey(message BroadcastMessage) {
	if vkClient == nil {
		return
	}

	message.SenderID = localID

	data, err := json.Marshal(message)
	if err != nil {
		return
	}

	ctx := context.Background()
	cmd := vkClient.Inner().B().Publish().Channel(wsChan).Message(string(data)).Build()
	if err := vkClient.Inner().Do(ctx, cmd).Error(); err != nil {
		logrus.Errorf("[WS] Failed to publish to Valkey: %v", err)
	}
}

func startValkeySubscriber() {
	if vkClient == nil {
		return
	}

	logrus.Info("[WS] Starting Valkey Pub/Sub subscriber for admin notices")
	go func() {
		err := vkClient.Inner().Receive(context.Background(), vkClient.Inner().B().Subscribe().Channel(wsChan).Build(), func(msg valkeylib.PubSubMessage) {
			var broadcastMsg BroadcastMessage
			if err := json.Unmarshal([]byte(msg.Message), &broadcastMsg); err == nil {
				// ignore our own publications
				if broadcastMsg.SenderID == localID {
					return
				}
				broadcastToLocal(broadcastMsg)
			}
		})
		if err != nil {
			logrus.Errorf("[WS] Valkey subscriber failed: %v", err)
		}
	}()
}

func closeConnection(conn *websocket.Conn) {
	_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
	_ = conn.Close()
	delete(Clients, conn)
}

func RunHub() {
	if vkClient != nil {
		startValkeySubscriber()
	}

	for {
		select {
		case conn := <-Register:
			handleRegister(conn)

		case conn := <-Unregister:
			handleUnregister(conn)

		case message := <-Broadcast:
			broadcastToLocal(message)

			if vkClient != nil {
				publishToValkey(message)
			}
		}
	}
}

func RegisterRoutes(app fiber.Router, settings SnapshotProvider) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		defer func() {
			Unregister <- conn
			_ = conn.Close()
		}()

		Register <- conn

		for {
			messageType, message, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					logrus.Println("read error:", err)
				}
				return
			}

			if messageType != websocket.TextMessage {
				logrus.Println("unsupported message type:", messageType)
				continue
			}

			var messageData BroadcastMessage
			if err := json.Unmarshal(message, &messageData); err != nil {
				logrus.Println("unmarshal error:", err)
				return
			}

			if messageData.Code == CodeFetchSettings {
				snapshot, err := settings.Snapshot(context.Background())
				if err != nil {
					logrus.WithError(err).Warn("[WS] Settings snapshot incomplete")
				}
				Broadcast <- BroadcastMessage{
					Code:    CodeSettingsListing,
					Message: "Settings fetched",
					Result:  snapshot,
				}
			}
		}
	}))
}
