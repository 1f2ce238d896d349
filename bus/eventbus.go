package bus

import (
	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
)

var impl = EventBus.New()

const (
	TopicTableRefreshed     = "table.refreshed"
	TopicTableRefreshFailed = "table.refresh.failed"
)

// Event is published after a table refresh settles. Subject is the table
// name, Total the reported row count across all pages.
type Event struct {
	Subject string
	Event   string
	Error   string
	Total   int
}

func Subscribe(topic string, handle interface{}) error {
	return impl.Subscribe(topic, handle)
}

func SubscribeAsync(topic string, handle interface{}) error {
	return impl.SubscribeAsync(topic, handle, false)
}

func Unsubscribe(topic string, handle interface{}) error {
	return impl.Unsubscribe(topic, handle)
}

func Publish(topic string, payload Event) {
	if payload.Error != "" {
		log.Errorf("%s: %s", topic, payload.Error)
	}
	impl.Publish(topic, payload)
}

func WaitAsync() {
	impl.WaitAsync()
}

func Reset() {
	impl.WaitAsync()
	impl = EventBus.New()
}
