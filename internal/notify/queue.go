package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity представляет тип уведомления
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Toast - транзиентное пользовательское уведомление
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
}

// Queue держит живые уведомления
// Каждое уведомление живет фиксированный TTL и удаляется собственным
// таймером; Close останавливает все таймеры, чтобы после остановки
// очереди ни один callback не сработал
type Queue struct {
	mu     sync.Mutex
	ttl    time.Duration
	toasts []Toast
	timers map[string]*time.Timer
	closed bool
}

// DefaultTTL - время жизни уведомления по умолчанию
const DefaultTTL = 5 * time.Second

// NewQueue создает пустую очередь уведомлений
func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{
		ttl:    ttl,
		timers: make(map[string]*time.Timer),
	}
}

// Push добавляет уведомление со свежим идентификатором и взводит
// таймер его удаления. После Close вызов игнорируется
func (q *Queue) Push(message string, severity Severity) Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return Toast{}
	}

	toast := Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now(),
	}
	q.toasts = append(q.toasts, toast)

	id := toast.ID
	q.timers[id] = time.AfterFunc(q.ttl, func() {
		q.Remove(id)
	})

	return toast
}

// Remove удаляет уведомление; повторный вызов для того же id безвреден
func (q *Queue) Remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}

	filtered := q.toasts[:0]
	for _, toast := range q.toasts {
		if toast.ID != id {
			filtered = append(filtered, toast)
		}
	}
	q.toasts = filtered
}

// List возвращает живые уведомления в порядке добавления
func (q *Queue) List() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Toast(nil), q.toasts...)
}

// Close останавливает все ожидающие таймеры и блокирует новые Push
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
}
