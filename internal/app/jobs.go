package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/openpos/posledger/internal/domain"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 15m", func() {
		go a.SchedLowStockScanTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedClearExpireData()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedLowStockScanTask logs products whose stock dropped to or below the
// configured threshold so operators notice before a sale fails.
func (a *Application) SchedLowStockScanTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	items, err := a.ledger.Reports.LowStock(context.Background(), 0)
	if err != nil {
		zap.S().Errorf("low stock scan error %s", err.Error())
		return
	}
	for _, item := range items {
		zap.L().Warn("low stock",
			zap.Int64("product_id", item.ID),
			zap.String("name", item.Name),
			zap.Int("quantity", item.Quantity))
	}
}

// SchedClearExpireData purges audit entries past the retention window.
func (a *Application) SchedClearExpireData() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()
	a.gormDB.
		Where("created_at < ? ", time.Now().
			Add(-a.auditRetention())).Delete(&domain.SysAuditLog{})
}
