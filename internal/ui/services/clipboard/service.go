package clipboard

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"searchtabs/internal/clock"
	"searchtabs/internal/domain"
	"searchtabs/internal/eventbus"
)

// Service copies rows to the clipboard and keeps one acknowledgment state
// machine per row, each with its own timer. Rows never share state.
type Service struct {
	mu     sync.Mutex
	acks   map[string]*ack
	write  Writer
	ackFor time.Duration

	clock  clock.Clock
	bus    eventbus.EventBus
	logger *zap.Logger
}

type ack struct {
	timer      *clock.Timer
	generation uint64
}

// NewService creates a clipboard service. A nil writer uses the system clipboard.
func NewService(write Writer, ackFor time.Duration, clk clock.Clock, bus eventbus.EventBus, logger *zap.Logger) *Service {
	if write == nil {
		write = SystemWriter
	}
	if ackFor <= 0 {
		ackFor = DefaultAck
	}
	if clk == nil {
		clk = clock.Real()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		acks:   make(map[string]*ack),
		write:  write,
		ackFor: ackFor,
		clock:  clk,
		bus:    bus,
		logger: logger.Named("clipboard"),
	}
}

// Copy writes "<title> - <subtitle>" to the clipboard. On success the row is
// acknowledged for the ack duration; copying again restarts only that row's
// timer. Failures are logged and leave the row unacknowledged.
func (s *Service) Copy(item domain.Item) error {
	if err := s.write(item.CopyText()); err != nil {
		s.logger.Warn("clipboard write failed", zap.String("item", item.ID), zap.Error(err))
		s.publish(eventbus.CopyFailedEvent{ItemID: item.ID, Err: err})
		return fmt.Errorf("copy %q: %w", item.Title, err)
	}

	s.mu.Lock()
	a, ok := s.acks[item.ID]
	if !ok {
		a = &ack{}
		s.acks[item.ID] = a
	}
	a.timer.Stop()
	a.generation++
	gen := a.generation
	a.timer = s.clock.AfterFunc(s.ackFor, func() { s.expire(item.ID, gen) })
	s.mu.Unlock()

	s.publish(eventbus.CopySucceededEvent{ItemID: item.ID})
	return nil
}

// JustCopied reports whether a row currently shows its acknowledgment
func (s *Service) JustCopied(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.acks[itemID]
	return ok
}

// Retain drops acknowledgment state for rows that left the view
func (s *Service) Retain(itemIDs []string) {
	keep := make(map[string]bool, len(itemIDs))
	for _, id := range itemIDs {
		keep[id] = true
	}

	s.mu.Lock()
	for id, a := range s.acks {
		if !keep[id] {
			a.timer.Stop()
			delete(s.acks, id)
		}
	}
	s.mu.Unlock()
}

// Close stops every pending acknowledgment timer
func (s *Service) Close() {
	s.Retain(nil)
}

func (s *Service) expire(itemID string, gen uint64) {
	s.mu.Lock()
	a, ok := s.acks[itemID]
	if !ok || a.generation != gen {
		s.mu.Unlock()
		return
	}
	delete(s.acks, itemID)
	s.mu.Unlock()

	s.publish(eventbus.CopyAckExpiredEvent{ItemID: itemID})
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
