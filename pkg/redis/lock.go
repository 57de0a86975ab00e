package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLockNotHeld is returned when the lock key is missing or owned by someone else
var ErrLockNotHeld = errors.New("redis: lock not held by this client")

const (
	unlockScript = `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		else
			return 0
		end
	`
	refreshScript = `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("PEXPIRE", KEYS[1], ARGV[2])
		else
			return 0
		end
	`
)

// LockOptions represents options for distributed locking
type LockOptions struct {
	// TTL is the lock expiration time
	TTL time.Duration
	// RetryDelay is the delay between retry attempts
	RetryDelay time.Duration
	// MaxRetries is the maximum number of retry attempts, zero means a single try
	MaxRetries int
	// RefreshInterval is the interval used by AutoRefresh
	RefreshInterval time.Duration
	// LockNamespace prefixes the lock key
	LockNamespace string
}

// NewLockOptions creates a new lock options with default values
func NewLockOptions() *LockOptions {
	return &LockOptions{
		TTL:             30 * time.Second,
		RetryDelay:      100 * time.Millisecond,
		MaxRetries:      10,
		RefreshInterval: 10 * time.Second,
	}
}

// Lock represents a distributed lock
type Lock struct {
	client *Client
	key    string
	value  string
	opts   *LockOptions
}

// NewLock creates a new distributed lock
func NewLock(client *Client, key string, opts *LockOptions) *Lock {
	if opts == nil {
		opts = NewLockOptions()
	}
	return &Lock{
		client: client,
		key:    key,
		value:  uuid.NewString(),
		opts:   opts,
	}
}

// NewScheduledTaskLock creates a lock for a scheduled task. It is tried once and
// is meant to be kept alive with AutoRefresh while the owning instance runs.
func NewScheduledTaskLock(client *Client, key string, ttl, refreshInterval time.Duration, namespace string) *Lock {
	return NewLock(client, key, &LockOptions{
		TTL:             ttl,
		RefreshInterval: refreshInterval,
		LockNamespace:   namespace,
	})
}

// Key returns the full redis key of the lock
func (l *Lock) Key() string {
	if l.opts.LockNamespace != "" {
		return l.opts.LockNamespace + "::" + l.key
	}
	return l.key
}

// Lock attempts to acquire the lock
func (l *Lock) Lock(ctx context.Context) error {
	fullKey := l.Key()
	for attempt := 0; attempt <= l.opts.MaxRetries; attempt++ {
		acquired, err := l.client.GetClient().SetNX(ctx, fullKey, l.value, l.opts.TTL).Result()
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}
		if acquired {
			return nil
		}
		if attempt == l.opts.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.opts.RetryDelay):
		}
	}

	return fmt.Errorf("failed to acquire lock %s after %d attempts", fullKey, l.opts.MaxRetries+1)
}

// Unlock releases the lock
func (l *Lock) Unlock(ctx context.Context) error {
	result, err := l.client.GetClient().Eval(ctx, unlockScript, []string{l.Key()}, l.value).Int64()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// Refresh extends the lock's TTL
func (l *Lock) Refresh(ctx context.Context) error {
	result, err := l.client.GetClient().Eval(ctx, refreshScript, []string{l.Key()}, l.value, l.opts.TTL.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("failed to refresh lock: %w", err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// AutoRefresh starts a goroutine that refreshes the lock until ctx is done or a refresh fails
func (l *Lock) AutoRefresh(ctx context.Context) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		ticker := time.NewTicker(l.opts.RefreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			case <-ticker.C:
				if err := l.Refresh(ctx); err != nil {
					errChan <- err
					return
				}
			}
		}
	}()

	return errChan
}

// LockWithFunc executes a function while holding a lock
func LockWithFunc(ctx context.Context, client *Client, key string, opts *LockOptions, fn func() error) error {
	lock := NewLock(client, key, opts)

	if err := lock.Lock(ctx); err != nil {
		return err
	}
	defer func() { _ = lock.Unlock(context.WithoutCancel(ctx)) }()

	return fn()
}
