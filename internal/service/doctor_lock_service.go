package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrScheduleLockTimeout is returned when a doctor's schedule lock cannot
// be acquired within the configured acquire timeout.
var ErrScheduleLockTimeout = errors.New("doctor schedule is busy, try again")

// releaseLockScript deletes the lock key only if it still holds our token.
// Without the token check, a slow request whose lock already expired could
// delete a lock now owned by another request.
//
// Redis Go client automatically uses EVALSHA (send SHA hash only) after the
// first call, instead of EVAL (send full script text every time).
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	// Redis key prefix for per-doctor schedule locks
	lockKeyPrefix = "doctor:schedule:lock:"

	// Delay between lock acquisition attempts
	lockRetryInterval = 50 * time.Millisecond

	// Timeout for the detached release operation
	lockReleaseTimeout = 5 * time.Second
)

// DoctorLocker serializes schedule check-then-insert per doctor. Two
// concurrent requests for the same doctor could otherwise both pass the
// conflict scan before either insert commits.
type DoctorLocker interface {
	// Lock blocks until the doctor's lock is acquired, the acquire timeout
	// elapses, or ctx is done. On success it returns the release function;
	// the caller must invoke it on every exit path.
	Lock(ctx context.Context, doctorID uuid.UUID) (func(), error)
}

type doctorLockService struct {
	redisClient    *redis.Client
	log            *logrus.Logger
	ttl            time.Duration
	acquireTimeout time.Duration
}

func NewDoctorLockService(redisClient *redis.Client, log *logrus.Logger, ttl, acquireTimeout time.Duration) DoctorLocker {
	return &doctorLockService{
		redisClient:    redisClient,
		log:            log,
		ttl:            ttl,
		acquireTimeout: acquireTimeout,
	}
}

func (s *doctorLockService) Lock(ctx context.Context, doctorID uuid.UUID) (func(), error) {
	key := lockKeyPrefix + doctorID.String()
	token := uuid.NewString()
	deadline := time.Now().Add(s.acquireTimeout)

	for {
		acquired, err := s.redisClient.SetNX(ctx, key, token, s.ttl).Result()
		if err != nil {
			return nil, err
		}
		if acquired {
			return func() { s.release(key, token) }, nil
		}

		if time.Now().After(deadline) {
			return nil, ErrScheduleLockTimeout
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}

// release runs on a detached context so the lock is freed even when the
// request context is already cancelled.
func (s *doctorLockService) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), lockReleaseTimeout)
	defer cancel()

	if err := releaseLockScript.Run(ctx, s.redisClient, []string{key}, token).Err(); err != nil {
		// TTL will reclaim the lock if the delete is lost
		s.log.Warnf("Failed to release schedule lock %s: %+v", key, err)
	}
}
