package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/guardbook/internal/entity"
)

func (s *Service) AddLocation(ctx context.Context, name string) (entity.Location, error) {
	if _, err := entity.AdminFromCtx(ctx); err != nil {
		return entity.Location{}, err
	}

	name = strings.TrimSpace(name)

	err := validateLocationName(name)
	if err != nil {
		return entity.Location{}, err
	}

	l := entity.Location{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      name,
		CreatedAt: s.now().UTC(),
	}

	err = s.repo.CreateLocation(ctx, l)
	if err != nil {
		return entity.Location{}, fmt.Errorf("create location: %w", err)
	}

	slog.InfoContext(ctx, "location added", "location_id", l.ID)

	return l, nil
}

func (s *Service) UpdateLocation(ctx context.Context, id uuid.UUID, name string) (entity.Location, error) {
	if _, err := entity.AdminFromCtx(ctx); err != nil {
		return entity.Location{}, err
	}

	name = strings.TrimSpace(name)

	err := validateLocationName(name)
	if err != nil {
		return entity.Location{}, err
	}

	l, err := s.repo.UpdateLocation(ctx, id, name)
	if err != nil {
		return entity.Location{}, fmt.Errorf("update location %s: %w", id, err)
	}

	return l, nil
}

// DeleteLocation removes a location no guard is assigned to.
func (s *Service) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	if _, err := entity.AdminFromCtx(ctx); err != nil {
		return err
	}

	n, err := s.repo.CountGuardsInLocation(ctx, id)
	if err != nil {
		return fmt.Errorf("count guards in location %s: %w", id, err)
	}

	if n > 0 {
		return entity.ErrLocationInUse
	}

	err = s.repo.DeleteLocation(ctx, id)
	if err != nil {
		return fmt.Errorf("delete location %s: %w", id, err)
	}

	slog.InfoContext(ctx, "location deleted", "location_id", id)

	return nil
}

func (s *Service) Locations(ctx context.Context) ([]entity.Location, error) {
	if _, err := entity.IdentityFromCtx(ctx); err != nil {
		return nil, err
	}

	locations, err := s.repo.Locations(ctx)
	if err != nil {
		return nil, fmt.Errorf("get locations: %w", err)
	}

	return locations, nil
}

func (s *Service) Location(ctx context.Context, id uuid.UUID) (entity.Location, error) {
	if _, err := entity.IdentityFromCtx(ctx); err != nil {
		return entity.Location{}, err
	}

	l, err := s.repo.Location(ctx, id)
	if err != nil {
		return entity.Location{}, fmt.Errorf("get location %s: %w", id, err)
	}

	return l, nil
}

func (s *Service) LocationExists(ctx context.Context, name string) (bool, error) {
	if _, err := entity.IdentityFromCtx(ctx); err != nil {
		return false, err
	}

	_, err := s.repo.LocationByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("get location by name: %w", err)
	}

	return true, nil
}
