package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Raybod-Code/ayneh-beauty-sub002/internal/config"
	domain "github.com/Raybod-Code/ayneh-beauty-sub002/internal/domain/booking"
)

func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// Availability caches computed free slots per (salon, staff, service, date).
// Entries are short-lived and best-effort: any redis failure degrades to a
// recompute, never to an error on the request path.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(rdb *redis.Client, ttl time.Duration) *Availability {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &Availability{rdb: rdb, ttl: ttl}
}

func slotKey(salonID, staffID, serviceID uint, date string) string {
	return fmt.Sprintf("avail:%d:%d:%d:%s", salonID, staffID, serviceID, date)
}

func (a *Availability) Get(
	ctx context.Context,
	salonID, staffID, serviceID uint,
	date string,
) ([]domain.TimeSlot, bool) {

	if a == nil || a.rdb == nil {
		return nil, false
	}

	raw, err := a.rdb.Get(ctx, slotKey(salonID, staffID, serviceID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (a *Availability) Set(
	ctx context.Context,
	salonID, staffID, serviceID uint,
	date string,
	slots []domain.TimeSlot,
) {

	if a == nil || a.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := a.rdb.Set(ctx, slotKey(salonID, staffID, serviceID, date), raw, a.ttl).Err(); err != nil {
		log.Println("availability cache set:", err)
	}
}

// Invalidate drops every cached slot list for a staff member on a date,
// across all services. Called after any booking mutation for that staff
// member; short TTLs make a missed invalidation self-healing.
func (a *Availability) Invalidate(
	ctx context.Context,
	salonID, staffID uint,
	date string,
) {

	if a == nil || a.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("avail:%d:%d:*:%s", salonID, staffID, date)
	keys, err := a.rdb.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}

	if err := a.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Println("availability cache invalidate:", err)
	}
}
