package common

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// MailQueueService carries outbound mail over a Redis Stream so request
// handlers never wait on SMTP. Delivery is best-effort: consumers log
// and drop failures, they never retry.
type MailQueueService struct {
	client *redis.Client
}

// NewMailQueueService creates a new Redis-backed mail queue
func NewMailQueueService(client *redis.Client) *MailQueueService {
	return &MailQueueService{
		client: client,
	}
}

// MailQueueItem is one message waiting for delivery.
type MailQueueItem struct {
	Kind      string `json:"kind"` // registration | ticket | bill
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	QueuedAt  string `json:"queued_at"`
}

// Enqueue adds a message to the outbound stream.
func (s *MailQueueService) Enqueue(ctx context.Context, streamName string, item *MailQueueItem) error {
	if item.QueuedAt == "" {
		item.QueuedAt = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal mail item: %w", err)
	}

	// XADD stream_name * data <json>
	args := &redis.XAddArgs{
		Stream: streamName,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}

	if _, err := s.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to add to stream: %w", err)
	}

	return nil
}

// CreateConsumerGroup ensures the consumer group exists, starting from
// the beginning of the stream. BUSYGROUP means it is already there.
func (s *MailQueueService) CreateConsumerGroup(ctx context.Context, streamName, groupName string) error {
	err := s.client.XGroupCreateMkStream(ctx, streamName, groupName, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}
	return nil
}

// Dequeue reads one message for the given consumer, blocking up to
// blockTime. Returns (nil, "", nil) on timeout.
func (s *MailQueueService) Dequeue(ctx context.Context, streamName, groupName, consumerName string, blockTime time.Duration) (*MailQueueItem, string, error) {
	args := &redis.XReadGroupArgs{
		Group:    groupName,
		Consumer: consumerName,
		Streams:  []string{streamName, ">"}, // ">" means new messages only
		Count:    1,
		Block:    blockTime,
	}

	streams, err := s.client.XReadGroup(ctx, args).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to read from stream: %w", err)
	}

	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return nil, "", nil
	}

	msg := streams[0].Messages[0]

	dataStr, ok := msg.Values["data"].(string)
	if !ok {
		return nil, msg.ID, fmt.Errorf("malformed stream entry %s", msg.ID)
	}

	var item MailQueueItem
	if err := json.Unmarshal([]byte(dataStr), &item); err != nil {
		return nil, msg.ID, fmt.Errorf("failed to unmarshal mail item: %w", err)
	}

	return &item, msg.ID, nil
}

// Ack acknowledges a processed message.
func (s *MailQueueService) Ack(ctx context.Context, streamName, groupName, messageID string) error {
	if err := s.client.XAck(ctx, streamName, groupName, messageID).Err(); err != nil {
		return fmt.Errorf("failed to ack message: %w", err)
	}
	return nil
}

// PendingCount reports how many entries sit unacknowledged in the group.
func (s *MailQueueService) PendingCount(ctx context.Context, streamName, groupName string) (int64, error) {
	pending, err := s.client.XPending(ctx, streamName, groupName).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read pending entries: %w", err)
	}
	return pending.Count, nil
}
