package localstore

import (
	"strconv"
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// newID возвращает идентификатор, производный от текущего времени
// Монотонность внутри процесса обеспечивается счетчиком: два вызова
// в одну наносекунду не выдадут одинаковый идентификатор
func newID() string {
	for {
		now := time.Now().UnixNano()
		last := lastID.Load()
		if now <= last {
			now = last + 1
		}
		if lastID.CompareAndSwap(last, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}
