package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/openpos/posledger/internal/domain"
	"github.com/openpos/posledger/internal/ledger"
)

// startAuditWriter persists ledger audit events off the request path.
func (a *Application) startAuditWriter() {
	err := a.bus.SubscribeAsync(ledger.TopicAudit, func(ev ledger.AuditEvent) {
		entry := domain.SysAuditLog{
			Action:    ev.Action,
			Target:    ev.Target,
			Detail:    ev.Detail,
			CreatedAt: time.Now(),
		}
		if err := a.gormDB.Create(&entry).Error; err != nil {
			zap.L().Error("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err))
		}
	}, false)
	if err != nil {
		zap.S().Errorf("audit subscribe error %s", err.Error())
	}
}
