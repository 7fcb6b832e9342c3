package domain

import (
	"time"
)

// SysConfig is a runtime setting row, grouped by type and keyed by name.
type SysConfig struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id,string"`
	Sort      int       `json:"sort"`
	Type      string    `gorm:"index" json:"type"`
	Name      string    `gorm:"index" json:"name"`
	Value     string    `json:"value"`
	Remark    string    `json:"remark"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName Specify table name
func (SysConfig) TableName() string {
	return "sys_config"
}

// SysAuditLog records every mutating ledger command. Rows are written
// asynchronously from ledger events and purged by a daily job.
type SysAuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id,string"`
	Action    string    `gorm:"size:64;index" json:"action"`
	Target    string    `gorm:"size:64" json:"target"`
	Detail    string    `gorm:"size:1024" json:"detail"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// TableName Specify table name
func (SysAuditLog) TableName() string {
	return "sys_audit_log"
}
