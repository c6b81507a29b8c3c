package service

import (
	"context"
	"fmt"

	"carzone/internal/model"
	"carzone/internal/repository"
)

// FilterOptions bundles every reference entity list for filter dropdowns.
type FilterOptions struct {
	Types         []model.VehicleType  `json:"types"`
	Marks         []model.Mark         `json:"marks"`
	Transmissions []model.Transmission `json:"transmissions"`
	Fuels         []model.Fuel         `json:"fuels"`
}

// FilterService serves the combined filter options endpoint.
type FilterService interface {
	Options(ctx context.Context) (*FilterOptions, error)
}

type filterService struct {
	fuelRepo         repository.AttributeRepository[model.Fuel]
	markRepo         repository.AttributeRepository[model.Mark]
	typeRepo         repository.AttributeRepository[model.VehicleType]
	transmissionRepo repository.AttributeRepository[model.Transmission]
}

// NewFilterService creates a new filter options service.
func NewFilterService(
	fuelRepo repository.AttributeRepository[model.Fuel],
	markRepo repository.AttributeRepository[model.Mark],
	typeRepo repository.AttributeRepository[model.VehicleType],
	transmissionRepo repository.AttributeRepository[model.Transmission],
) FilterService {
	return &filterService{
		fuelRepo:         fuelRepo,
		markRepo:         markRepo,
		typeRepo:         typeRepo,
		transmissionRepo: transmissionRepo,
	}
}

func (s *filterService) Options(ctx context.Context) (*FilterOptions, error) {
	types, err := s.typeRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list types: %w", err)
	}
	marks, err := s.markRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list marks: %w", err)
	}
	transmissions, err := s.transmissionRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transmissions: %w", err)
	}
	fuels, err := s.fuelRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fuels: %w", err)
	}
	return &FilterOptions{
		Types:         types,
		Marks:         marks,
		Transmissions: transmissions,
		Fuels:         fuels,
	}, nil
}
