package report

import (
	"view-scaffold/internal/config"
	"view-scaffold/internal/model"
)

// Reporter is the unified interface for all inventory report formats
type Reporter interface {
	Export(inv *model.Inventory, cfg *config.Config) error
}
