package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQueuePushAssignsID проверяет, что каждое уведомление получает
// свежий идентификатор и попадает в список живых
func TestQueuePushAssignsID(t *testing.T) {
	q := NewQueue(time.Minute)
	defer q.Close()

	first := q.Push("Cita agendada correctamente", SeveritySuccess)
	second := q.Push("Credenciales inválidas", SeverityError)

	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	toasts := q.List()
	require.Len(t, toasts, 2)
	// Порядок добавления сохраняется
	assert.Equal(t, first.ID, toasts[0].ID)
	assert.Equal(t, second.ID, toasts[1].ID)
}

// TestQueueToastExpires проверяет самоудаление уведомления по TTL
func TestQueueToastExpires(t *testing.T) {
	q := NewQueue(20 * time.Millisecond)
	defer q.Close()

	q.Push("Mensaje fugaz", SeverityInfo)
	require.Len(t, q.List(), 1)

	assert.Eventually(t, func() bool {
		return len(q.List()) == 0
	}, time.Second, 5*time.Millisecond)
}

// TestQueueRemove проверяет ручное удаление и его идемпотентность
func TestQueueRemove(t *testing.T) {
	q := NewQueue(time.Minute)
	defer q.Close()

	toast := q.Push("Para descartar", SeverityWarning)
	q.Remove(toast.ID)
	assert.Empty(t, q.List())

	// Повторное удаление того же id безвредно
	q.Remove(toast.ID)
	q.Remove("unknown")
	assert.Empty(t, q.List())
}

// TestQueueClose проверяет, что после остановки очереди Push игнорируется
func TestQueueClose(t *testing.T) {
	q := NewQueue(time.Minute)
	q.Push("Antes de cerrar", SeverityInfo)
	q.Close()

	toast := q.Push("Después de cerrar", SeverityInfo)
	assert.Empty(t, toast.ID)
	assert.Len(t, q.List(), 1)
}

// TestQueueZeroTTLFallsBack проверяет подстановку TTL по умолчанию
func TestQueueZeroTTLFallsBack(t *testing.T) {
	q := NewQueue(0)
	defer q.Close()
	assert.Equal(t, DefaultTTL, q.ttl)
}
