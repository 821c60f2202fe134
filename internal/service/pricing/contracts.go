package pricing

import (
	"context"

	"github.com/m04kA/CMS-SchedulingService/internal/integrations/catalogservice"
)

// CatalogClient интерфейс клиента для CatalogService
type CatalogClient interface {
	GetPackage(ctx context.Context, packageID int64) (*catalogservice.Package, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
