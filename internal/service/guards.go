package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/guardbook/internal/entity"
)

// RegisterGuard creates a guard account together with its salary terms.
func (s *Service) RegisterGuard(ctx context.Context, in entity.NewGuard) (entity.Guard, error) {
	if _, err := entity.AdminFromCtx(ctx); err != nil {
		return entity.Guard{}, err
	}

	in.Email = normalizeEmail(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Surname = strings.TrimSpace(in.Surname)

	err := validateNewGuard(in)
	if err != nil {
		return entity.Guard{}, err
	}

	err = s.checkNationalID(ctx, 0, in.NationalID)
	if err != nil {
		return entity.Guard{}, err
	}

	err = s.checkLocation(ctx, in.LocationID)
	if err != nil {
		return entity.Guard{}, err
	}

	hash, err := s.HashPassword(in.Password)
	if err != nil {
		return entity.Guard{}, err
	}

	now := s.now().UTC()

	guard := entity.Guard{
		ID:            uuid.Must(uuid.NewV4()),
		GuardID:       in.GuardID,
		Email:         in.Email,
		PasswordHash:  hash,
		Surname:       in.Surname,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		DateOfBirth:   in.DateOfBirth,
		Gender:        in.Gender,
		NationalID:    in.NationalID,
		PostalAddress: in.PostalAddress,
		Cellphone:     in.Cellphone,
		LocationID:    in.LocationID,
		Picture:       entity.DefaultPicture,
		EmployedAt:    in.EmployedAt,
		CreatedAt:     now,
	}

	salary := entity.Salary{
		ID:         uuid.Must(uuid.NewV4()),
		GuardID:    in.GuardID,
		Gross:      in.GrossSalary,
		Deductions: in.Deductions,
		Contract:   in.Contract,
		CreatedAt:  now,
	}

	err = s.repo.CreateGuard(ctx, guard, salary)
	if err != nil {
		return entity.Guard{}, fmt.Errorf("create guard %d: %w", in.GuardID, err)
	}

	slog.InfoContext(ctx, "guard registered", "guard_id", guard.GuardID, "contract", salary.Contract)

	return guard, nil
}

func (s *Service) UpdateGuardBasicInfo(
	ctx context.Context,
	guardID int64,
	info entity.GuardBasicInfo,
) (entity.Guard, error) {
	if _, err := entity.AdminFromCtx(ctx); err != nil {
		return entity.Guard{}, err
	}

	info.FirstName = strings.TrimSpace(info.FirstName)
	info.LastName = strings.TrimSpace(info.LastName)
	info.Surname = strings.TrimSpace(info.Surname)

	err := validateBasicInfo(info)
	if err != nil {
		return entity.Guard{}, err
	}

	err = s.checkNationalID(ctx, guardID, info.NationalID)
	if err != nil {
		return entity.Guard{}, err
	}

	err = s.checkLocation(ctx, info.LocationID)
	if err != nil {
		return entity.Guard{}, err
	}

	guard, err := s.repo.UpdateGuardBasicInfo(ctx, guardID, info)
	if err != nil {
		return entity.Guard{}, fmt.Errorf("update guard %d basic info: %w", guardID, err)
	}

	return guard, nil
}

func (s *Service) UpdateGuardContactInfo(
	ctx context.Context,
	guardID int64,
	info entity.GuardContactInfo,
) (entity.Guard, error) {
	if _, err := entity.AdminFromCtx(ctx); err != nil {
		return entity.Guard{}, err
	}

	info.Email = normalizeEmail(info.Email)
	info.Cellphone = strings.TrimSpace(info.Cellphone)

	err := validateContactInfo(info)
	if err != nil {
		return entity.Guard{}, err
	}

	guard, err := s.repo.UpdateGuardContactInfo(ctx, guardID, info)
	if err != nil {
		return entity.Guard{}, fmt.Errorf("update guard %d contact info: %w", guardID, err)
	}

	return guard, nil
}

func (s *Service) GuardInfo(ctx context.Context, guardID int64) (entity.Guard, error) {
	return s.ownedGuard(ctx, guardID)
}

func (s *Service) AllGuards(ctx context.Context, f entity.GuardFilter) ([]entity.Guard, error) {
	if _, err := entity.AdminFromCtx(ctx); err != nil {
		return nil, err
	}

	guards, err := s.repo.Guards(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get guards: %w", err)
	}

	return guards, nil
}

func (s *Service) GuardsInLocation(ctx context.Context, locationID uuid.UUID) ([]entity.Guard, error) {
	return s.AllGuards(ctx, entity.GuardFilter{LocationID: uuid.NullUUID{UUID: locationID, Valid: true}})
}

func (s *Service) GuardExists(ctx context.Context, email string) (bool, error) {
	if _, err := entity.AdminFromCtx(ctx); err != nil {
		return false, err
	}

	_, err := s.repo.GuardByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("get guard by email: %w", err)
	}

	return true, nil
}

// UploadPicture stores a profile picture under <guard id>/<uuid>-<filename> and points the guard at it.
func (s *Service) UploadPicture(
	ctx context.Context,
	guardID int64,
	r io.Reader,
	filename, contentType string,
) (entity.Guard, error) {
	_, err := s.ownedGuard(ctx, guardID)
	if err != nil {
		return entity.Guard{}, err
	}

	name := pictureName(filename)
	if name == "" {
		return entity.Guard{}, entity.MissingField("file")
	}

	key := fmt.Sprintf("%d/%s-%s", guardID, uuid.Must(uuid.NewV4()), name)

	err = s.storage.Store(ctx, r, key, contentType)
	if err != nil {
		return entity.Guard{}, fmt.Errorf("store picture: %w", err)
	}

	guard, err := s.repo.UpdateGuardPicture(ctx, guardID, key)
	if err != nil {
		return entity.Guard{}, fmt.Errorf("update guard %d picture: %w", guardID, err)
	}

	slog.InfoContext(ctx, "guard picture uploaded", "guard_id", guardID, "key", key)

	return guard, nil
}

func pictureName(filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), `\`, "/"))
	if name == "." || name == "/" {
		return ""
	}

	return strings.ReplaceAll(name, " ", "_")
}

// checkNationalID rejects a national ID already held by another guard when uniqueness is enabled.
func (s *Service) checkNationalID(ctx context.Context, guardID, nationalID int64) error {
	if !s.cfg.Guards.UniqueNationalID || nationalID == 0 {
		return nil
	}

	other, err := s.repo.GuardByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil
		}

		return fmt.Errorf("get guard by national id: %w", err)
	}

	if other.GuardID != guardID {
		return entity.DuplicateField("nationalId")
	}

	return nil
}

func (s *Service) checkLocation(ctx context.Context, id uuid.NullUUID) error {
	if !id.Valid {
		return nil
	}

	_, err := s.repo.Location(ctx, id.UUID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.InvalidField("locationId")
		}

		return fmt.Errorf("get location %s: %w", id.UUID, err)
	}

	return nil
}
