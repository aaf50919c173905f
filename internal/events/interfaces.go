package events

import "github.com/MKhiriev/go-toml-selector/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/events_mock.go -package=mock

// Publisher is the write side of the notification channel.
type Publisher interface {
	Publish(update models.SchemaUpdate)
}

// Subscriber is the read side. The returned cancel func detaches the
// subscription and closes its channel.
type Subscriber interface {
	Subscribe(buffer int) (<-chan models.SchemaUpdate, func())
}
