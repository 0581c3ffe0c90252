package timeouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func TestConfigureIgnoresZero(t *testing.T) {
	t.Cleanup(timeouts.Reset)

	timeouts.Configure(timeouts.Config{Short: 7 * time.Second})
	if got := timeouts.Short(); got != 7*time.Second {
		t.Errorf("Short: got %v", got)
	}
	if got := timeouts.Medium(); got != timeouts.DefaultMedium {
		t.Errorf("Medium: got %v, want default", got)
	}
}

func TestDetached_SurvivesParentCancel(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := timeouts.Detached(parent, zap.NewNop(), "test")
	defer cancel()

	cancelParent()
	if err := ctx.Err(); err != nil {
		t.Errorf("detached context canceled with parent: %v", err)
	}
	if _, ok := ctx.Deadline(); !ok {
		t.Error("detached context should still carry the Long deadline")
	}
}
