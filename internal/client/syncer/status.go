package syncer

import (
	"sync"
	"time"
)

// Status снимок состояния очереди и связности для внешних потребителей
// (индикатор в UI, service-worker bridge). Потребители должны трактовать
// его как snapshot, а не как дельту.
type Status struct {
	LastSyncedAt time.Time `json:"last_synced_at"`
	Pending      int       `json:"pending"`
	Failed       int       `json:"failed"`
	QueueSize    int       `json:"queue_size"`
	Syncing      bool      `json:"syncing"`
	HasPending   bool      `json:"has_pending"`
	HasFailed    bool      `json:"has_failed"`
	IsOnline     bool      `json:"is_online"`
}

// StatusListener получает снимок состояния при каждом изменении очереди
// и по фоновому таймеру
type StatusListener func(status Status)

// broadcaster рассылает снимки состояния зарегистрированным слушателям.
// Чисто наблюдательный: не содержит логики очереди, ядро никогда не
// вызывает UI напрямую.
type broadcaster struct {
	listeners map[int]StatusListener
	nextID    int
	mu        sync.Mutex
}

func newBroadcaster() *broadcaster {
	return &broadcaster{
		listeners: make(map[int]StatusListener),
	}
}

// subscribe регистрирует слушателя и возвращает функцию отписки
func (b *broadcaster) subscribe(listener StatusListener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.listeners[id] = listener

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	}
}

// publish рассылает снимок всем слушателям.
// Паника в чужом callback не должна ронять движок синхронизации.
func (b *broadcaster) publish(status Status) {
	b.mu.Lock()
	listeners := make([]StatusListener, 0, len(b.listeners))
	for _, l := range b.listeners {
		listeners = append(listeners, l)
	}
	b.mu.Unlock()

	for _, listener := range listeners {
		func() {
			defer func() {
				_ = recover()
			}()
			listener(status)
		}()
	}
}
