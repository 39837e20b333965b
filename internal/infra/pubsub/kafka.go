package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"entity-config-server/internal/shared_kernel/avro"

	"github.com/lovoo/goka"
)

const (
	maxRetries int = 10
)

var retryDelay = 5 * time.Second

// publisherKey represents a unique key for a publisher instance
type publisherKey struct {
	brokers       string
	topic         string
	prototypeType string
}

type publisherInstance struct {
	publisher *SimpleKafkaPublisher
	once      sync.Once
	err       error
}

// publishersMap stores singleton instances of publishers
var (
	publishersMap   = make(map[publisherKey]*publisherInstance)
	publishersMutex sync.Mutex
)

// codecFor prefers the static Avro schemas and falls back to JSON
func codecFor(prototype any) goka.Codec {
	if avro.Supports(prototype) {
		return avro.NewAvroCodec(prototype)
	}
	return newJSONCodec(prototype)
}

func NewKafkaPublisher(brokers []string, topic string, prototype any) (*SimpleKafkaPublisher, error) {
	key := publisherKey{
		brokers:       strings.Join(brokers, ","),
		topic:         topic,
		prototypeType: fmt.Sprintf("%T", prototype),
	}

	publishersMutex.Lock()
	instance, exists := publishersMap[key]
	if !exists {
		instance = &publisherInstance{}
		publishersMap[key] = instance
	}
	publishersMutex.Unlock()

	instance.once.Do(func() {
		slog.Debug("creating kafka publisher",
			slog.String("topic", topic),
			slog.String("prototypeType", key.prototypeType))

		for try := 0; try < maxRetries; try++ {
			slog.Debug("connecting to kafka brokers", slog.String("brokers", key.brokers))
			e, err := goka.NewEmitter(brokers, goka.Stream(topic), codecFor(prototype))
			if err == nil {
				instance.publisher = &SimpleKafkaPublisher{e}
				return
			}
			time.Sleep(retryDelay)
		}

		instance.err = fmt.Errorf("impossible to connect to kafka brokers after %d retries", maxRetries)
	})

	if instance.err != nil {
		return nil, instance.err
	}

	return instance.publisher, nil
}

var _ Publisher = (*SimpleKafkaPublisher)(nil)

type SimpleKafkaPublisher struct {
	emitter *goka.Emitter
}

func (p *SimpleKafkaPublisher) Publish(_ context.Context, key Key, message Message) error {
	slog.Debug("publishing message", slog.String("key", string(key)))
	err := p.emitter.EmitSync(string(key), message)
	if err != nil {
		slog.Error("emitting message", slog.String("error", err.Error()))
		return err
	}

	return nil
}

var _ Consumer = (*SimpleKafkaConsumer)(nil)

type SimpleKafkaConsumer struct {
	brokers []string
	group   goka.Group
}

func NewKafkaConsumer(brokers []string, group string) *SimpleKafkaConsumer {
	return &SimpleKafkaConsumer{
		brokers: brokers,
		group:   goka.Group(group),
	}
}

// Consume starts a goka processor for topic in the background
func (c *SimpleKafkaConsumer) Consume(topic Topic, handler MessageHandler, prototype Prototype) error {
	cb := func(ctx goka.Context, msg any) {
		if err := handler(ctx.Context(), Key(ctx.Key()), msg); err != nil {
			slog.Error("handling message",
				slog.String("topic", string(topic)),
				slog.String("error", err.Error()))
		}
	}

	gg := goka.DefineGroup(
		c.group,
		goka.Input(goka.Stream(topic), codecFor(prototype), cb),
	)
	p, err := goka.NewProcessor(c.brokers, gg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	go func() {
		if err := p.Run(context.Background()); err != nil {
			slog.Error("kafka processor stopped",
				slog.String("topic", string(topic)),
				slog.String("error", err.Error()))
		}
	}()

	return nil
}
