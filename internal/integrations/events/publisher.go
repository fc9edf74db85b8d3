package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// KafkaPublisher асинхронно публикует события бронирований.
// Публикация best-effort: ошибки доставки только логируются и не откатывают бронирование
type KafkaPublisher struct {
	producer sarama.AsyncProducer
	topic    string
	logger   Logger
	done     chan struct{}
}

// NewKafkaPublisher подключается к брокерам и создает асинхронный продюсер
func NewKafkaPublisher(brokers []string, topic string, logger Logger) (*KafkaPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Compression = sarama.CompressionSnappy
	cfg.Producer.Flush.Frequency = 500 * time.Millisecond
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewAsyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProducer, err)
	}
	return NewKafkaPublisherWithProducer(producer, topic, logger), nil
}

// NewKafkaPublisherWithProducer оборачивает готовый продюсер (в тестах - sarama/mocks)
func NewKafkaPublisherWithProducer(producer sarama.AsyncProducer, topic string, logger Logger) *KafkaPublisher {
	p := &KafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
		done:     make(chan struct{}),
	}

	go func() {
		defer close(p.done)
		for err := range producer.Errors() {
			p.logger.Error("events: failed to deliver message to topic=%s: %v", p.topic, err.Err)
		}
	}()

	return p
}

// BookingConfirmed публикует событие подтверждения бронирования
func (p *KafkaPublisher) BookingConfirmed(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, Event{
		Type:         TypeBookingConfirmed,
		BookingID:    b.ID,
		CustomerName: b.CustomerName,
		BranchKey:    b.BranchKey,
		SlotKey:      b.Slot.Key,
		Services:     b.ServiceNames(),
		Total:        b.Total,
		PaymentMode:  string(b.PaymentMode),
		VisitDate:    b.VisitDate().Format(domain.DateFormat),
		OccurredAt:   b.CreatedAt,
	})
}

// FeedbackRecorded публикует событие об отзыве
func (p *KafkaPublisher) FeedbackRecorded(ctx context.Context, b *domain.Booking) error {
	ev := Event{
		Type:         TypeFeedbackRecorded,
		BookingID:    b.ID,
		CustomerName: b.CustomerName,
		BranchKey:    b.BranchKey,
		Total:        b.Total,
		PaymentMode:  string(b.PaymentMode),
		OccurredAt:   b.UpdatedAt,
	}
	if b.Feedback != nil {
		rating, review := b.Feedback.Rating, b.Feedback.Review
		ev.Rating = &rating
		ev.Review = &review
	}
	return p.publish(ctx, ev)
}

func (p *KafkaPublisher) publish(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(ev.BookingID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	select {
	case p.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close дожидается отправки буфера и закрывает продюсер
func (p *KafkaPublisher) Close() error {
	p.producer.AsyncClose()
	<-p.done
	return nil
}

// NoopPublisher используется, когда публикация событий выключена
type NoopPublisher struct{}

func (NoopPublisher) BookingConfirmed(context.Context, *domain.Booking) error { return nil }

func (NoopPublisher) FeedbackRecorded(context.Context, *domain.Booking) error { return nil }

func (NoopPublisher) Close() error { return nil }
