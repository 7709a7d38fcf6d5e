package jobs_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/jobs"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubFactory struct{}

func (stubFactory) Create() commands.OrderUoW { panic("not used in this test") }

func TestJobManager_StartAndStop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := commands.NewCancelStaleOrdersCommandHandler(stubFactory{}, logger)

	manager := jobs.NewJobManager(handler, 30*time.Minute, logger)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StopWithoutStart(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := commands.NewCancelStaleOrdersCommandHandler(stubFactory{}, logger)

	manager := jobs.NewJobManager(handler, 30*time.Minute, logger)

	manager.StopAll()
}
