package event

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mtx       sync.RWMutex
	listeners = make([]*Listener, 0)
)

type Listener struct {
	eventType Type
	channel   chan interface{}
}

// AddEventListener registers a callback for one event type. The callback
// runs on its own goroutine; observers never block a settlement.
func AddEventListener(eventType Type, callback func(msg interface{})) {
	zap.L().With(zap.String("type", string(eventType))).Debug("EventManager: AddListener")

	listener := Listener{
		eventType: eventType,
		channel:   make(chan interface{}),
	}

	mtx.Lock()
	listeners = append(listeners, &listener)
	mtx.Unlock()

	go func() {
		for msg := range listener.channel {
			callback(msg)
		}
	}()
}

func EmitEvent(eventType Type, msg interface{}) {
	mtx.RLock()
	defer mtx.RUnlock()

	if len(listeners) == 0 {
		zap.L().Debug("No event listeners available")
	}

	for _, listener := range listeners {
		if listener.eventType == eventType {
			zap.L().With(zap.String("type", string(eventType))).Debug("EventManager: Emitting event")
			go func(handler chan interface{}) {
				handler <- msg
			}(listener.channel)
		}
	}
}
