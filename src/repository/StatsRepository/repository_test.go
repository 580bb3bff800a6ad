package StatsRepository

import (
	"context"
	"testing"

	"gitlab.com/devpro_studio/Paranoia/pkg/cache/redis"
)

func TestIsUsed(t *testing.T) {
	repo := NewForTest(&redis.Mock{Data: map[string]string{"stat_used:beta": "1"}})

	if !repo.IsUsed(context.Background(), "beta") {
		t.Fatalf("expected beta to be marked used")
	}
	if repo.IsUsed(context.Background(), "gamma") {
		t.Fatalf("expected gamma to be unused")
	}
}
