package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	catalogClient "github.com/m04kA/CMS-SchedulingService/internal/integrations/catalogservice"
)

// Service сервис расчёта цены бронирования
// Отсутствие обязательного поля - всегда жёсткая ошибка валидации,
// сервис никогда не подставляет цену по умолчанию
type Service struct {
	catalog CatalogClient
	logger  Logger
}

// NewService создает новый экземпляр сервиса расчёта цены
func NewService(catalog CatalogClient, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// Resolve рассчитывает цену бронирования по выбранному режиму
func (s *Service) Resolve(ctx context.Context, req *Request) (*Resolution, error) {
	switch req.Mode {
	case domain.PriceModePackage:
		return s.resolvePackage(ctx, req)
	case domain.PriceModeOverride:
		return s.resolveOverride(ctx, req)
	case domain.PriceModeCustom:
		return s.resolveCustom(req)
	default:
		s.logger.Warn("Resolve: unknown price mode %q", req.Mode)
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}
}

// resolvePackage цена берется из тарифной сетки пакета
func (s *Service) resolvePackage(ctx context.Context, req *Request) (*Resolution, error) {
	if req.PackageID == nil {
		s.logger.Warn("Resolve: package mode without packageId")
		return nil, fmt.Errorf("%w: packageId is not set", ErrMissingPackage)
	}

	pkg, err := s.fetchPackage(ctx, *req.PackageID)
	if err != nil {
		return nil, err
	}

	tier, err := selectTier(pkg, req.AreaSqm, req.Frequency)
	if err != nil {
		s.logger.Warn("Resolve: no tier in package id=%d for area=%v frequency=%v",
			pkg.ID, req.AreaSqm, req.Frequency)
		return nil, err
	}

	s.logger.Info("Resolve: package id=%d tier price=%.2f", pkg.ID, tier.Price)
	return &Resolution{
		Price:       tier.Price,
		PackageID:   req.PackageID,
		PackageName: &pkg.Name,
	}, nil
}

// resolveOverride пакет сохраняется для истории, цена задана вручную
// Нулевая цена легальна (промо, VIP-клиенты)
func (s *Service) resolveOverride(ctx context.Context, req *Request) (*Resolution, error) {
	if req.PackageID == nil {
		s.logger.Warn("Resolve: override mode without packageId")
		return nil, fmt.Errorf("%w: packageId is not set", ErrMissingPackage)
	}
	if err := validateCustomPrice(req.CustomPrice); err != nil {
		return nil, err
	}

	pkg, err := s.fetchPackage(ctx, *req.PackageID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Resolve: override package id=%d price=%.2f", pkg.ID, *req.CustomPrice)
	return &Resolution{
		Price:       *req.CustomPrice,
		PackageID:   req.PackageID,
		PackageName: &pkg.Name,
	}, nil
}

// resolveCustom полностью произвольная работа без пакета
func (s *Service) resolveCustom(req *Request) (*Resolution, error) {
	if req.JobName == nil || *req.JobName == "" {
		s.logger.Warn("Resolve: custom mode without jobName")
		return nil, ErrMissingJobName
	}
	if err := validateCustomPrice(req.CustomPrice); err != nil {
		return nil, err
	}

	s.logger.Info("Resolve: custom job %q price=%.2f", *req.JobName, *req.CustomPrice)
	return &Resolution{
		Price:   *req.CustomPrice,
		JobName: req.JobName,
	}, nil
}

func (s *Service) fetchPackage(ctx context.Context, packageID int64) (*catalogClient.Package, error) {
	pkg, err := s.catalog.GetPackage(ctx, packageID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrPackageNotFound) {
			s.logger.Warn("Resolve: package id=%d not found", packageID)
			return nil, fmt.Errorf("%w: package id=%d not found", ErrMissingPackage, packageID)
		}
		s.logger.Error("Resolve: failed to get package id=%d: %v", packageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}
	return pkg, nil
}

func validateCustomPrice(price *float64) error {
	if price == nil {
		return fmt.Errorf("%w: customPrice is not set", ErrInvalidPrice)
	}
	if *price < 0 {
		return fmt.Errorf("%w: customPrice=%.2f", ErrInvalidPrice, *price)
	}
	return nil
}

// selectTier выбирает тариф пакета по площади и частоте уборки
// nil-параметр подходит под любой тариф; тариф с пустой частотой подходит
// под любую частоту, MaxAreaSqm = 0 означает отсутствие верхней границы
func selectTier(pkg *catalogClient.Package, areaSqm *int, frequency *string) (*catalogClient.PriceTier, error) {
	for i := range pkg.Tiers {
		tier := &pkg.Tiers[i]

		if frequency != nil && tier.Frequency != "" && tier.Frequency != *frequency {
			continue
		}

		if areaSqm != nil {
			if *areaSqm < tier.MinAreaSqm {
				continue
			}
			if tier.MaxAreaSqm > 0 && *areaSqm > tier.MaxAreaSqm {
				continue
			}
		}

		return tier, nil
	}

	return nil, fmt.Errorf("%w: package id=%d", ErrNoMatchingTier, pkg.ID)
}
