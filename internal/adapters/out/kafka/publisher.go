package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// writerBatchTimeout bounds how long a publish waits for its batch to fill.
const writerBatchTimeout = 10 * time.Millisecond

var (
	_ ports.OrderEventPublisher = &OrderChangedPublisher{}
	_ ports.OrderEventPublisher = NoopPublisher{}
)

// MessageWriter is the subset of *kafka.Writer the publisher depends on.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderChangedPublisher writes a snapshot of every changed order to one topic,
// keyed by order id so that changes of one order keep their relative order.
type OrderChangedPublisher struct {
	writer MessageWriter
	now    func() time.Time
}

// NewWriter creates a writer for topic on the comma separated broker list.
func NewWriter(brokersCSV, topic string) (*kafka.Writer, error) {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           writerBatchTimeout,
		AllowAutoTopicCreation: true,
	}, nil
}

func NewOrderChangedPublisher(writer MessageWriter) (*OrderChangedPublisher, error) {
	if writer == nil {
		return nil, errs.NewValueIsRequiredError("writer")
	}
	return &OrderChangedPublisher{
		writer: writer,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// PublishOrderChanged writes the current state of o.
func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	occurredAt := p.now()
	data, err := json.Marshal(NewOrderChangedEvent(o, occurredAt))
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.ID().String()),
		Value: data,
		Time:  occurredAt,
	})
}

// Close flushes pending messages and releases the writer.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher discards events. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderChanged(context.Context, *order.Order) error {
	return nil
}
