package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/guardbook/internal/entity"
)

var clockLayouts = []string{"15:04", "15:04:05", "3:04PM", "3:04 PM"}

// SignIn opens the attendance record of guardID for day.
func (s *Service) SignIn(ctx context.Context, guardID int64, day, clock string) (entity.Attendance, error) {
	_, err := s.ownedGuard(ctx, guardID)
	if err != nil {
		return entity.Attendance{}, err
	}

	m, err := s.parseMoment(day, clock)
	if err != nil {
		return entity.Attendance{}, err
	}

	if s.daysAfter(m.at, m.date) != 0 {
		return entity.Attendance{}, entity.InvalidField("time")
	}

	a := entity.Attendance{
		ID:         uuid.Must(uuid.NewV4()),
		GuardID:    guardID,
		Date:       m.date,
		SignedInAt: m.at,
	}

	err = s.repo.CreateAttendance(ctx, a)
	if err != nil {
		return entity.Attendance{}, fmt.Errorf("guard %d sign in on %s: %w", guardID, day, err)
	}

	slog.InfoContext(ctx, "guard signed in", "guard_id", guardID, "date", day)

	return a, nil
}

// SignOut completes the open attendance record of guardID for day.
// A time of day earlier than the sign in is taken as the next morning of a night shift.
// For day contracts it then posts the daily wage. Payroll failures are logged and do not fail the sign out.
func (s *Service) SignOut(ctx context.Context, guardID int64, day, clock string) (entity.Attendance, error) {
	guard, err := s.ownedGuard(ctx, guardID)
	if err != nil {
		return entity.Attendance{}, err
	}

	m, err := s.parseMoment(day, clock)
	if err != nil {
		return entity.Attendance{}, err
	}

	open, err := s.repo.Attendance(ctx, guardID, m.date)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Attendance{}, entity.ErrNoOpenSignIn
		}

		return entity.Attendance{}, fmt.Errorf("get attendance of guard %d on %s: %w", guardID, day, err)
	}

	if open.State() != entity.AttendanceSignedIn {
		return entity.Attendance{}, entity.ErrNoOpenSignIn
	}

	at := m.at
	if at.Before(open.SignedInAt) && m.clockOnly {
		at = at.AddDate(0, 0, 1)
	}

	if at.Before(open.SignedInAt) {
		return entity.Attendance{}, entity.InvalidField("time")
	}

	if n := s.daysAfter(at, m.date); n < 0 || n > 1 {
		return entity.Attendance{}, entity.InvalidField("time")
	}

	a, err := s.repo.CompleteAttendance(ctx, guardID, m.date, at)
	if err != nil {
		return entity.Attendance{}, fmt.Errorf("guard %d sign out on %s: %w", guardID, day, err)
	}

	slog.InfoContext(ctx, "guard signed out", "guard_id", guardID, "date", day, "worked", a.Worked().String())

	s.payAfterSignOut(ctx, guard)

	return a, nil
}

func (s *Service) payAfterSignOut(ctx context.Context, guard entity.Guard) {
	salary, err := s.repo.SalaryByGuardID(ctx, guard.GuardID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, "guard has no salary", "guard_id", guard.GuardID)
			return
		}

		slog.ErrorContext(ctx, "get salary after sign out", "guard_id", guard.GuardID, "error", err)

		return
	}

	if salary.Contract != entity.ContractDay {
		return
	}

	_, err = s.postWage(ctx, guard, salary)
	if err != nil {
		slog.ErrorContext(ctx, "post daily wage", "guard_id", guard.GuardID, "error", err)
	}
}

func (s *Service) GuardAttendance(ctx context.Context, guardID int64) ([]entity.Attendance, error) {
	identity, err := entity.IdentityFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if !identity.CanActOnGuard(guardID) {
		return nil, entity.ErrForbidden
	}

	records, err := s.repo.AttendanceByGuard(ctx, guardID)
	if err != nil {
		return nil, fmt.Errorf("get attendance of guard %d: %w", guardID, err)
	}

	return records, nil
}

func (s *Service) AllAttendance(ctx context.Context, f entity.AttendanceFilter) ([]entity.Attendance, error) {
	if _, err := entity.AdminFromCtx(ctx); err != nil {
		return nil, err
	}

	records, err := s.repo.AllAttendance(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get attendance: %w", err)
	}

	return records, nil
}

type moment struct {
	// date is midnight UTC of the calendar day.
	date      time.Time
	at        time.Time
	clockOnly bool
}

// parseMoment reads a calendar date and either a time of day in the attendance zone or an RFC3339 instant.
func (s *Service) parseMoment(day, clock string) (moment, error) {
	day = strings.TrimSpace(day)
	if day == "" {
		return moment{}, entity.MissingField("date")
	}

	d, err := time.ParseInLocation(dateLayout, day, s.loc)
	if err != nil {
		return moment{}, entity.InvalidField("date")
	}

	date := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

	clock = strings.TrimSpace(clock)
	if clock == "" {
		return moment{}, entity.MissingField("time")
	}

	if at, err := time.Parse(time.RFC3339, clock); err == nil {
		return moment{date: date, at: at}, nil
	}

	for _, layout := range clockLayouts {
		c, err := time.Parse(layout, clock)
		if err == nil {
			at := time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, s.loc)
			return moment{date: date, at: at, clockOnly: true}, nil
		}
	}

	return moment{}, entity.InvalidField("time")
}

// daysAfter returns how many calendar days, in the attendance zone, at falls after date.
func (s *Service) daysAfter(at, date time.Time) int {
	local := at.In(s.loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	return int(day.Sub(date).Hours() / 24)
}
