package ws

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Максимальный размер входящего сообщения
	maxMessageSize = 4096

	// Таймаут записи одного сообщения
	writeWait = 10 * time.Second

	// Ожидание pong от клиента
	pongWait = 60 * time.Second

	// Интервал пингов, должен быть меньше pongWait
	pingPeriod = (pongWait * 9) / 10

	// Размер буфера исходящих сообщений на соединение
	sendBufferSize = 64
)

// Client - одно аутентифицированное соединение. У пользователя может быть
// несколько клиентов одновременно (несколько устройств).
type Client struct {
	id     uuid.UUID
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID int64
	email  string
	logger *logrus.Entry
}

func newClient(hub *Hub, conn *websocket.Conn, userID int64, email string, logger *logrus.Logger) *Client {
	id := uuid.New()
	return &Client{
		id:     id,
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		userID: userID,
		email:  email,
		logger: logger.WithFields(logrus.Fields{
			"channel_id": id,
			"user_id":    userID,
		}),
	}
}

// readPump читает входящие конверты и передает их обработчику.
// Завершается при разрыве соединения и снимает клиента с регистрации.
func (c *Client) readPump(handle func(c *Client, raw []byte)) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.WithError(err).Warn("Unexpected socket close")
			}
			return
		}
		handle(c, raw)
	}
}

// writePump пишет сообщения из канала send и поддерживает keepalive пингами
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub закрыл канал при снятии с регистрации
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// sendEvent сериализует событие и кладет его в очередь этого соединения
func (c *Client) sendEvent(event string, payload any) {
	msg, err := NewEnvelope(event, payload)
	if err != nil {
		c.logger.WithError(err).WithField("event", event).Error("Failed to encode event")
		return
	}
	select {
	case c.send <- msg:
	default:
		c.logger.WithField("event", event).Warn("Send buffer full, dropping event")
	}
}

// sendError отправляет событие error только этому соединению
func (c *Client) sendError(message string) {
	c.sendEvent(EventError, message)
}
