package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var (
	_ PublisherFactory = (*MemoryPublisherFactory)(nil)
	_ ConsumerFactory  = (*MemoryConsumerFactory)(nil)
)

// In-memory implementation for local runs and tests
type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

func NewMemoryPublisherFactory() *MemoryPublisherFactory {
	return &MemoryPublisherFactory{
		broker: GetMemoryBroker(),
	}
}

func (f *MemoryPublisherFactory) New(topic Topic, prototype Message) (Publisher, error) {
	return &MemoryPublisher{
		broker: f.broker,
		topic:  topic,
	}, nil
}

type MemoryPublisher struct {
	broker *MemoryBroker
	topic  Topic
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	return p.broker.Publish(ctx, p.topic, key, message)
}

type MemoryConsumerFactory struct {
	broker *MemoryBroker
	group  string
}

func NewMemoryConsumerFactory(group string) *MemoryConsumerFactory {
	return &MemoryConsumerFactory{
		broker: GetMemoryBroker(),
		group:  group,
	}
}

func (f *MemoryConsumerFactory) New() Consumer {
	return &MemoryConsumer{
		broker: f.broker,
		group:  f.group,
	}
}

type MemoryConsumer struct {
	broker *MemoryBroker
	group  string
}

func (c *MemoryConsumer) Consume(topic Topic, handler MessageHandler, prototype Prototype) error {
	return c.broker.Subscribe(topic, c.group, handler)
}

// MemoryBroker delivers every message to one handler per consumer group.
// Handlers run asynchronously, in publish order per group.
type MemoryBroker struct {
	mu     sync.RWMutex
	groups map[Topic]map[string]*memoryGroup
	counts map[Topic]int
}

type memoryGroup struct {
	handlers []MessageHandler
	next     int
	queue    chan ConsumedMessage
}

var (
	memoryBroker     *MemoryBroker
	memoryBrokerOnce sync.Once
)

func GetMemoryBroker() *MemoryBroker {
	memoryBrokerOnce.Do(func() {
		memoryBroker = newMemoryBroker()
	})
	return memoryBroker
}

func newMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		groups: make(map[Topic]map[string]*memoryGroup),
		counts: make(map[Topic]int),
	}
}

func (b *MemoryBroker) Publish(ctx context.Context, topic Topic, key Key, message Message) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.counts[topic]++
	for name, group := range b.groups[topic] {
		select {
		case group.queue <- ConsumedMessage{Ctx: context.WithoutCancel(ctx), Key: key, Value: message}:
		default:
			return fmt.Errorf("consumer group %s buffer full on topic %s", name, topic)
		}
	}

	return nil
}

func (b *MemoryBroker) Subscribe(topic Topic, group string, handler MessageHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	groups, ok := b.groups[topic]
	if !ok {
		groups = make(map[string]*memoryGroup)
		b.groups[topic] = groups
	}

	g, ok := groups[group]
	if !ok {
		g = &memoryGroup{queue: make(chan ConsumedMessage, 100)}
		groups[group] = g
		go b.dispatch(topic, group, g)
	}
	g.handlers = append(g.handlers, handler)

	return nil
}

func (b *MemoryBroker) dispatch(topic Topic, name string, group *memoryGroup) {
	for message := range group.queue {
		b.mu.Lock()
		handler := group.handlers[group.next%len(group.handlers)]
		group.next++
		b.mu.Unlock()

		b.handle(topic, name, handler, message)
	}
}

func (b *MemoryBroker) handle(topic Topic, group string, handler MessageHandler, message ConsumedMessage) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in message handler",
				slog.String("topic", string(topic)),
				slog.String("group", group),
				slog.Any("panic", r))
		}
	}()

	if err := handler(message.Ctx, message.Key, message.Value); err != nil {
		slog.Error("handling message",
			slog.String("topic", string(topic)),
			slog.String("group", group),
			slog.String("error", err.Error()))
	}
}

// Reset drops every subscription and counter
func (b *MemoryBroker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, groups := range b.groups {
		for _, group := range groups {
			close(group.queue)
		}
	}
	b.groups = make(map[Topic]map[string]*memoryGroup)
	b.counts = make(map[Topic]int)
}

// GetMessageCount returns how many messages were published on topic since
// the last Reset
func (b *MemoryBroker) GetMessageCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.counts[topic]
}
