package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/openpos/posledger/internal/domain"
)

type settingSchema struct {
	Category string
	Name     string
	Default  string
	Remark   string
}

// Settings initialized on first start. The low-stock threshold is a
// setting rather than a constant because different report views used to
// disagree about it; operators can tune one value for all views.
var defaultSettings = []settingSchema{
	{"ledger", "low_stock_threshold", "10", "Quantity at or below which a product counts as low stock"},
	{"ledger", "audit_retention_days", "365", "Days to keep audit log entries"},
}

func (a *Application) checkSettings() {
	for sort, s := range defaultSettings {
		var count int64
		a.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", s.Category, s.Name).
			Count(&count)

		if count == 0 {
			a.gormDB.Create(&domain.SysConfig{
				Sort:   sort,
				Type:   s.Category,
				Name:   s.Name,
				Value:  s.Default,
				Remark: s.Remark,
			})
			zap.L().Info("initialized setting",
				zap.String("key", s.Category+"."+s.Name),
				zap.String("default", s.Default))
		}
	}
}

// checkDemoProducts seeds a small demo catalog when enabled in config.
func (a *Application) checkDemoProducts() {
	if !a.appConfig.System.SeedDemoData {
		return
	}

	defaultProducts := []domain.Product{
		{Name: "Coffee", Category: "Beverages", Description: "House blend, 250g", Price: 25.00, Quantity: 10},
		{Name: "Green Tea", Category: "Beverages", Description: "Loose leaf, 100g", Price: 18.50, Quantity: 40},
		{Name: "Ceramic Mug", Category: "Merchandise", Price: 12.00, Quantity: 25},
		{Name: "Gift Card Sleeve", Category: "Merchandise", Price: 1.50, Quantity: 200},
	}

	for _, p := range defaultProducts {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("name = ?", p.Name).Count(&count)
		if count == 0 {
			p.ID = a.idNode.Generate().Int64()
			p.CreatedAt = time.Now()
			p.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to create demo product", zap.String("name", p.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized demo product", zap.String("name", p.Name))
			}
		}
	}
}

// auditRetention returns the configured audit retention, defaulting to a year.
func (a *Application) auditRetention() time.Duration {
	days := a.GetSettingsInt64Value("ledger", "audit_retention_days")
	if days <= 0 {
		days = 365
	}
	return time.Duration(days) * 24 * time.Hour
}
