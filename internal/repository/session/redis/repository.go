package redis

import (
	"time"

	"github.com/redis/go-redis/v9"
)

type repo struct {
	rc         *redis.Client
	sessionExp time.Duration
}

func NewRepo(rc *redis.Client, sessionExp time.Duration) *repo {
	return &repo{
		rc:         rc,
		sessionExp: sessionExp,
	}
}
