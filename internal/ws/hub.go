package ws

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Hub хранит таблицу живых соединений и комнат процесса. Комната - это
// адресуемый набор соединений; для каждого пользователя заводится личная
// комната user_<id>, так что доставка другу работает и при нескольких
// устройствах. Состояние не переживает рестарт и не разделяется между
// инстансами.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	rooms   map[string]map[*Client]struct{}
	logger  *logrus.Logger
}

// NewHub создает пустой реестр соединений
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		rooms:   make(map[string]map[*Client]struct{}),
		logger:  logger,
	}
}

// UserRoom возвращает имя личной комнаты пользователя
func UserRoom(userID int64) string {
	return fmt.Sprintf("user_%d", userID)
}

// Register добавляет соединение и подключает его к личной комнате пользователя
func (h *Hub) Register(c *Client) {
	room := UserRoom(c.userID)

	h.mu.Lock()
	h.clients[c] = struct{}{}
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][c] = struct{}{}
	h.mu.Unlock()

	h.logger.WithFields(logrus.Fields{
		"channel_id": c.id,
		"user_id":    c.userID,
		"room":       room,
	}).Info("Socket client registered")
}

// Unregister убирает соединение из всех комнат и закрывает его канал отправки.
// Повторный вызов для уже убранного соединения - no-op.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	for room, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	close(c.send)
	h.mu.Unlock()

	h.logger.WithFields(logrus.Fields{
		"channel_id": c.id,
		"user_id":    c.userID,
	}).Info("Socket client unregistered")
}

// SendToUser доставляет событие на все соединения пользователя.
// Если пользователь не подключен - тихий no-op, очередей нет.
func (h *Hub) SendToUser(userID int64, event string, payload any) {
	msg, err := NewEnvelope(event, payload)
	if err != nil {
		h.logger.WithError(err).WithField("event", event).Error("Failed to encode event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[UserRoom(userID)] {
		h.deliver(c, event, msg)
	}
}

// Broadcast доставляет событие на все живые соединения без гео-фильтрации
func (h *Hub) Broadcast(event string, payload any) {
	msg, err := NewEnvelope(event, payload)
	if err != nil {
		h.logger.WithError(err).WithField("event", event).Error("Failed to encode event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		h.deliver(c, event, msg)
	}
}

// deliver кладет сообщение в канал соединения не блокируясь: медленный
// получатель теряет событие, но не задерживает рассылку остальным
func (h *Hub) deliver(c *Client, event string, msg []byte) {
	select {
	case c.send <- msg:
	default:
		h.logger.WithFields(logrus.Fields{
			"channel_id": c.id,
			"user_id":    c.userID,
			"event":      event,
		}).Warn("Send buffer full, dropping event")
	}
}

// ClientCount возвращает количество живых соединений
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// UserOnline сообщает, есть ли у пользователя хотя бы одно живое соединение
func (h *Hub) UserOnline(userID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[UserRoom(userID)]) > 0
}
