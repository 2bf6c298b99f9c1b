// Package events publishes auth lifecycle events to Redis pub/sub so
// other portal services can react to logins without polling the tables.
// Publishing is fire-and-forget: a Redis fault never fails the request
// that triggered the event.
package events

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const Channel = "portal.auth"

const (
	ActionUserRegistered = "user_registered"
	ActionUserLogin      = "user_login"
	ActionUserLogout     = "user_logout"
)

type Event struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	UserID    int    `json:"user_id,omitempty"`
	Username  string `json:"username,omitempty"`
	Timestamp int64  `json:"ts"`
}

type Publisher struct {
	rdb *redis.Client
	ctx context.Context
}

func NewPublisher(redisURL string) *Publisher {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("[EVENTS] invalid redis url:", err)
	}

	rdb := redis.NewClient(opt)
	ctx := context.Background()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("[EVENTS] redis ping failed:", err)
	}

	return &Publisher{rdb: rdb, ctx: ctx}
}

func (p *Publisher) Publish(action string, userID int, username string) {
	e := Event{
		ID:        generateID(),
		Action:    action,
		UserID:    userID,
		Username:  username,
		Timestamp: time.Now().UnixMilli(),
	}

	data, err := json.Marshal(e)
	if err != nil {
		return
	}
	if err := p.rdb.Publish(p.ctx, Channel, data).Err(); err != nil {
		log.Println("[EVENTS] publish failed:", err)
	}
}

func (p *Publisher) Close() {
	p.rdb.Close()
}

func generateID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
