package storage

import "time"

// SettingModel is the GORM model for the settings table
type SettingModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (SettingModel) TableName() string { return "settings" }

// CounterModel is the GORM model for named counters
type CounterModel struct {
	Name      string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     int64 `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (CounterModel) TableName() string { return "counters" }

// OtaSessionModel is the GORM model for finished OTA metrics sessions
type OtaSessionModel struct {
	CreatedAt  time.Time
	DurationMs int64     `gorm:"not null;default:0"`
	EndedAt    time.Time `gorm:"not null;index:idx_ota_ended_at"`
	ID         string    `gorm:"primaryKey"`
	ResultCode int       `gorm:"not null;default:0"`
	StartedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (OtaSessionModel) TableName() string { return "ota_sessions" }

// TraceEventModel is the GORM model for diagnostic trace events
type TraceEventModel struct {
	CreatedAt time.Time `gorm:"index:idx_trace_created_at"`
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Message   string    `gorm:"not null;default:''"`
	Reason    string    `gorm:"not null;index:idx_trace_reason"`
}

// TableName specifies the table name for GORM
func (TraceEventModel) TableName() string { return "trace_events" }

// RebootReasonModel holds the single pending reboot reason
type RebootReasonModel struct {
	ID       uint `gorm:"primaryKey"`
	MarkedAt time.Time
	Reason   string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (RebootReasonModel) TableName() string { return "reboot_reasons" }

// LogCollectionModel is the GORM model for frozen log collections
type LogCollectionModel struct {
	CreatedAt  time.Time
	ID         string     `gorm:"primaryKey"`
	Lines      string     `gorm:"not null;default:''"`
	Uploaded   bool       `gorm:"not null;default:false;index:idx_log_uploaded"`
	UploadedAt *time.Time `gorm:"default:null"`
}

// TableName specifies the table name for GORM
func (LogCollectionModel) TableName() string { return "log_collections" }
