package storage

import (
	"strings"
	"time"

	"github.com/renato0307/devcon/internal/domain"
)

func otaSessionModelToDomain(m OtaSessionModel) domain.OtaSessionRecord {
	return domain.OtaSessionRecord{
		Duration:   time.Duration(m.DurationMs) * time.Millisecond,
		EndedAt:    m.EndedAt,
		ID:         m.ID,
		ResultCode: m.ResultCode,
		StartedAt:  m.StartedAt,
	}
}

func domainToOtaSessionModel(r domain.OtaSessionRecord) OtaSessionModel {
	return OtaSessionModel{
		DurationMs: r.Duration.Milliseconds(),
		EndedAt:    r.EndedAt,
		ID:         r.ID,
		ResultCode: r.ResultCode,
		StartedAt:  r.StartedAt,
	}
}

func traceEventModelToDomain(m TraceEventModel) domain.TraceEvent {
	return domain.TraceEvent{
		CreatedAt: m.CreatedAt,
		ID:        m.ID,
		Message:   m.Message,
		Reason:    m.Reason,
	}
}

func logCollectionModelToDomain(m LogCollectionModel) domain.LogCollection {
	var lines []string
	if m.Lines != "" {
		lines = strings.Split(m.Lines, "\n")
	}
	return domain.LogCollection{
		CreatedAt: m.CreatedAt,
		ID:        m.ID,
		Lines:     lines,
		Uploaded:  m.Uploaded,
	}
}

func domainToLogCollectionModel(c domain.LogCollection) LogCollectionModel {
	return LogCollectionModel{
		CreatedAt: c.CreatedAt,
		ID:        c.ID,
		Lines:     strings.Join(c.Lines, "\n"),
		Uploaded:  c.Uploaded,
	}
}
