// Package stats is the analytics side channel: unique visitor counts in
// redis hyperloglogs, raw hits streamed to rabbitmq. Everything here is
// best effort and never fails a caller.
package stats

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	zlog "github.com/rs/zerolog/log"

	"github.com/eventboard/eventboard/internal/metrics"
)

// HitEnvelope is the wire form of one recorded endpoint hit.
type HitEnvelope struct {
	App       string    `json:"app"`
	URI       string    `json:"uri"`
	IP        string    `json:"ip"`
	Timestamp time.Time `json:"timestamp"`
}

// HitPublisher streams hit envelopes to the broker; nil disables
// streaming.
type HitPublisher interface {
	Publish(ctx context.Context, routingKey, messageID string, body []byte) error
}

type Client struct {
	rdb *redis.Client
	pub HitPublisher
	app string
}

func New(redisURL, app string, pub HitPublisher) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Client{rdb: rdb, pub: pub, app: app}, nil
}

// NewWithRedis wires an already constructed redis client; tests use it.
func NewWithRedis(rdb *redis.Client, app string, pub HitPublisher) *Client {
	return &Client{rdb: rdb, pub: pub, app: app}
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// RecordHit folds the visitor address into the endpoint's hyperloglog
// and streams the raw hit to the broker. Failures are logged and
// dropped.
func (c *Client) RecordHit(ctx context.Context, uri, ip string, at time.Time) {
	if err := c.rdb.PFAdd(ctx, hitKey(uri), ip).Err(); err != nil {
		metrics.AnalyticsFailures.Inc()
		zlog.Warn().Err(err).Str("uri", uri).Msg("hit record failed")
		return
	}
	metrics.HitsRecorded.Inc()

	if c.pub == nil {
		return
	}
	body, err := json.Marshal(HitEnvelope{App: c.app, URI: uri, IP: ip, Timestamp: at.UTC()})
	if err != nil {
		return
	}
	if err := c.pub.Publish(ctx, HitRoutingKey, uuid.NewString(), body); err != nil {
		metrics.AnalyticsFailures.Inc()
		zlog.Warn().Err(err).Str("uri", uri).Msg("hit publish failed")
	}
}

// UniqueHits returns the endpoint's distinct visitor estimate, 0 when
// the backend is unreachable.
func (c *Client) UniqueHits(ctx context.Context, uri string) int64 {
	n, err := c.rdb.PFCount(ctx, hitKey(uri)).Result()
	if err != nil {
		metrics.AnalyticsFailures.Inc()
		zlog.Warn().Err(err).Str("uri", uri).Msg("unique hit count failed")
		return 0
	}
	return n
}

func hitKey(uri string) string {
	return "stats:hits:" + uri
}
