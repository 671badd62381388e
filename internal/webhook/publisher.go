package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const alertQueueKey = "incident_alerts"

// IncidentAlertEvent is the payload delivered to the configured
// webhook when a critical incident is reported.
type IncidentAlertEvent struct {
	IncidentID   string    `json:"incident_id"`
	IncidentCode string    `json:"incident_code"`
	DistrictName string    `json:"district_name"`
	CrimeType    string    `json:"crime_type"`
	Severity     string    `json:"severity"`
	Address      string    `json:"address"`
	Latitude     float64   `json:"lat"`
	Longitude    float64   `json:"lng"`
	IncidentDate time.Time `json:"incident_date"`
	Timestamp    time.Time `json:"timestamp"`
}

// AlertPublisher queues incident alerts for asynchronous delivery.
type AlertPublisher interface {
	Publish(ctx context.Context, event IncidentAlertEvent) error
}

// RedisAlertPublisher is an AlertPublisher backed by a Redis list.
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{redisClient: client}
}

// Publish pushes the event onto the alert queue. Delivery is handled
// by the AlertWorker.
func (p *RedisAlertPublisher) Publish(ctx context.Context, event IncidentAlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
