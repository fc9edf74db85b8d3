package events

import "errors"

var (
	// ErrMarshal возвращается, когда событие не удалось сериализовать
	ErrMarshal = errors.New("events: failed to marshal event")

	// ErrProducer возвращается, когда не удалось создать продюсер Kafka
	ErrProducer = errors.New("events: failed to create producer")
)
