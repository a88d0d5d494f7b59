package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	portsmocks "github.com/renato0307/devcon/internal/ports/mocks"
)

func TestDiagnostics_TraceEvent(t *testing.T) {
	repo := portsmocks.NewMockTraceRepository(t)
	repo.EXPECT().SaveTraceEvent(mock.Anything, mock.MatchedBy(func(e domain.TraceEvent) bool {
		return e.Reason == domain.TraceOtaInstallFailure && e.Message == "error code=5"
	})).Return(nil).Once()

	NewDiagnosticsService(repo, logging.NewCollector(4), nil).
		TraceEvent(context.Background(), domain.TraceOtaInstallFailure, "error code=5")
}

func TestDiagnostics_CollectLogs(t *testing.T) {
	logs := logging.NewCollector(4)
	_, _ = logs.Write([]byte("level=INFO msg=boot\n"))

	t.Run("uploads and marks", func(t *testing.T) {
		repo := portsmocks.NewMockTraceRepository(t)
		uploader := portsmocks.NewMockLogUploader(t)

		repo.EXPECT().SaveLogCollection(mock.Anything, mock.MatchedBy(func(c domain.LogCollection) bool {
			return len(c.Lines) == 1 && c.Lines[0] == "[devcon] level=INFO msg=boot"
		})).Return(nil)
		uploader.EXPECT().Upload(mock.Anything, mock.Anything).Return(nil)
		repo.EXPECT().MarkLogCollectionUploaded(mock.Anything, mock.AnythingOfType("string")).Return(nil)

		collection, err := NewDiagnosticsService(repo, logs, uploader).CollectLogs(context.Background())

		require.NoError(t, err)
		assert.True(t, collection.Uploaded)
	})

	t.Run("upload failure keeps collection pending", func(t *testing.T) {
		repo := portsmocks.NewMockTraceRepository(t)
		uploader := portsmocks.NewMockLogUploader(t)

		repo.EXPECT().SaveLogCollection(mock.Anything, mock.Anything).Return(nil)
		uploader.EXPECT().Upload(mock.Anything, mock.Anything).Return(errors.New("no servers available"))

		collection, err := NewDiagnosticsService(repo, logs, uploader).CollectLogs(context.Background())

		require.NoError(t, err)
		assert.False(t, collection.Uploaded)
	})

	t.Run("save failure", func(t *testing.T) {
		repo := portsmocks.NewMockTraceRepository(t)
		repo.EXPECT().SaveLogCollection(mock.Anything, mock.Anything).Return(errors.New("disk full"))

		_, err := NewDiagnosticsService(repo, logs, nil).CollectLogs(context.Background())

		assert.Error(t, err)
	})
}

func TestDiagnostics_UploadPending(t *testing.T) {
	repo := portsmocks.NewMockTraceRepository(t)
	uploader := portsmocks.NewMockLogUploader(t)

	pending := []domain.LogCollection{{ID: "a"}, {ID: "b"}}
	repo.EXPECT().ListLogCollections(mock.Anything, true).Return(pending, nil)
	uploader.EXPECT().Upload(mock.Anything, pending[0]).Return(nil)
	uploader.EXPECT().Upload(mock.Anything, pending[1]).Return(errors.New("timeout"))
	repo.EXPECT().MarkLogCollectionUploaded(mock.Anything, "a").Return(nil)

	uploaded, err := NewDiagnosticsService(repo, logging.NewCollector(1), uploader).UploadPending(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, uploaded)
}

var fixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRebootService(t *testing.T) {
	t.Run("consumes marked reason", func(t *testing.T) {
		repo := portsmocks.NewMockRebootRepository(t)
		repo.EXPECT().ConsumeRebootReason(mock.Anything).Return(domain.RebootReasonFirmwareUpdate, fixedTime, nil)

		s := NewRebootService(repo, nil)

		assert.Equal(t, domain.RebootReasonFirmwareUpdate, s.ConsumeBootReason(context.Background()))
		reason, at := s.BootReason()
		assert.Equal(t, domain.RebootReasonFirmwareUpdate, reason)
		assert.Equal(t, fixedTime, at)
	})

	t.Run("nothing marked", func(t *testing.T) {
		repo := portsmocks.NewMockRebootRepository(t)
		repo.EXPECT().ConsumeRebootReason(mock.Anything).Return("", fixedTime, nil)

		s := NewRebootService(repo, nil)

		assert.Equal(t, domain.RebootReasonUnknown, s.ConsumeBootReason(context.Background()))
	})

	t.Run("restart marks then restarts", func(t *testing.T) {
		repo := portsmocks.NewMockRebootRepository(t)
		repo.EXPECT().MarkRebootReason(mock.Anything, domain.RebootReasonUserRequest).Return(nil)
		restarted := false

		s := NewRebootService(repo, func() error { restarted = true; return nil })
		s.MarkResetImminent(context.Background(), domain.RebootReasonUserRequest)

		require.NoError(t, s.Restart())
		assert.True(t, restarted)
	})
}
