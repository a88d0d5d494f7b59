package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/devcon/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSettings(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.GetSetting(ctx, domain.SettingWifiSSID)
	assert.ErrorIs(t, err, domain.ErrSettingNotFound)

	require.NoError(t, repo.SetSetting(ctx, domain.SettingWifiSSID, "home"))
	require.NoError(t, repo.SetSetting(ctx, domain.SettingWifiSSID, "office"))
	require.NoError(t, repo.SetSetting(ctx, domain.SettingProjectKey, "abc"))

	value, err := repo.GetSetting(ctx, domain.SettingWifiSSID)
	require.NoError(t, err)
	assert.Equal(t, "office", value)

	all, err := repo.ListSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.SettingKey]string{
		domain.SettingProjectKey: "abc",
		domain.SettingWifiSSID:   "office",
	}, all)

	require.NoError(t, repo.DeleteSetting(ctx, domain.SettingWifiSSID))
	_, err = repo.GetSetting(ctx, domain.SettingWifiSSID)
	assert.ErrorIs(t, err, domain.ErrSettingNotFound)
}

func TestCounters(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.AddCounter(ctx, domain.CounterOtaTaskSchedules, 1))
	require.NoError(t, repo.AddCounter(ctx, domain.CounterOtaTaskSchedules, 1))
	require.NoError(t, repo.AddCounter(ctx, domain.CounterSyncFailure, 3))

	counters, err := repo.GetCounters(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counters[domain.CounterOtaTaskSchedules])
	assert.Equal(t, int64(3), counters[domain.CounterSyncFailure])
}

func TestOtaSessions(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	for i, code := range []int{0, 5, -1} {
		start := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.SaveOtaSession(ctx, domain.OtaSessionRecord{
			Duration:   90 * time.Second,
			EndedAt:    start.Add(90 * time.Second),
			ID:         string(rune('a' + i)),
			ResultCode: code,
			StartedAt:  start,
		}))
	}

	records, err := repo.ListOtaSessions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, -1, records[0].ResultCode)
	assert.Equal(t, 90*time.Second, records[0].Duration)
	assert.Equal(t, "b", records[1].ID)
}

func TestTraceEvents(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveTraceEvent(ctx, domain.TraceEvent{CreatedAt: base, Reason: domain.TraceOtaInstallFailure, Message: "error code=5"}))
	require.NoError(t, repo.SaveTraceEvent(ctx, domain.TraceEvent{CreatedAt: base.Add(time.Hour), Reason: domain.TraceTaskWatchdog}))

	events, err := repo.ListTraceEvents(ctx, time.Time{}, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.TraceTaskWatchdog, events[0].Reason)

	events, err = repo.ListTraceEvents(ctx, base.Add(30*time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.TraceTaskWatchdog, events[0].Reason)
}

func TestLogCollections(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveLogCollection(ctx, domain.LogCollection{ID: "one", Lines: []string{"[devcon] a", "[devcon] b"}}))
	require.NoError(t, repo.SaveLogCollection(ctx, domain.LogCollection{ID: "two"}))

	pending, err := repo.ListLogCollections(ctx, true)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	require.NoError(t, repo.MarkLogCollectionUploaded(ctx, "one"))
	assert.Error(t, repo.MarkLogCollectionUploaded(ctx, "missing"))

	pending, err = repo.ListLogCollections(ctx, true)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "two", pending[0].ID)
	assert.Empty(t, pending[0].Lines)

	all, err := repo.ListLogCollections(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, c := range all {
		if c.ID == "one" {
			assert.True(t, c.Uploaded)
			assert.Equal(t, []string{"[devcon] a", "[devcon] b"}, c.Lines)
		}
	}
}

func TestRebootReason(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	reason, _, err := repo.ConsumeRebootReason(ctx)
	require.NoError(t, err)
	assert.Empty(t, reason)

	require.NoError(t, repo.MarkRebootReason(ctx, domain.RebootReasonUserRequest))
	require.NoError(t, repo.MarkRebootReason(ctx, domain.RebootReasonFirmwareUpdate))

	reason, markedAt, err := repo.ConsumeRebootReason(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RebootReasonFirmwareUpdate, reason)
	assert.False(t, markedAt.IsZero())

	reason, _, err = repo.ConsumeRebootReason(ctx)
	require.NoError(t, err)
	assert.Empty(t, reason)
}
