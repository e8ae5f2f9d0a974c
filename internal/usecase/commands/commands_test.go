//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	sqlc "bookloop/internal/infra/sqlc/generated"
	"bookloop/internal/pkg/clock"
	"bookloop/internal/usecase/commands"
	"bookloop/internal/usecase/shared"
	sharedmock "bookloop/tests/mock/shared"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

type uowHarness struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	userBooks     *sharedmock.MockUserBookRepository
	exchanges     *sharedmock.MockExchangeRequestRepository
	notifications *sharedmock.MockNotificationRepository
	clock         *clock.MockClock
	jobs          []enqueuedJob
}

type enqueuedJob struct {
	kind   string
	topic  string
	notice commands.ExchangeNotice
}

// newUoWHarness runs Within callbacks synchronously against the mocked Tx.
func newUoWHarness(t *testing.T) *uowHarness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &uowHarness{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		userBooks:     sharedmock.NewMockUserBookRepository(ctrl),
		exchanges:     sharedmock.NewMockExchangeRequestRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		clock:         clock.NewMockClock(fixedNow),
	}

	h.uow.EXPECT().
		Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).
		AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().UserBooks().Return(h.userBooks).AnyTimes()
	h.tx.EXPECT().ExchangeRequests().Return(h.exchanges).AnyTimes()
	h.tx.EXPECT().Notifications().Return(h.notifications).AnyTimes()

	return h
}

// captureJobs records every enqueued notification.
func (h *uowHarness) captureJobs(t *testing.T) {
	t.Helper()
	h.notifications.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
			var n commands.ExchangeNotice
			require.NoError(t, jsoniter.Unmarshal(payload, &n))
			require.True(t, runAt.Equal(n.OccurredAt))
			h.jobs = append(h.jobs, enqueuedJob{kind: kind, topic: topic, notice: n})
			return nil
		}).
		AnyTimes()
}

func (h *uowHarness) exchangeCommands() commands.ExchangeCommands {
	return commands.NewExchangeCommands(h.uow, h.clock)
}

func (h *uowHarness) ledgerCommands() commands.LedgerCommands {
	return commands.NewLedgerCommands(h.uow, h.clock)
}

func mustV7() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
