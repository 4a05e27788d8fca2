package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clubops/clubops/internal/domain/staff"
	"github.com/clubops/clubops/internal/domain/team"
)

type StaffService struct {
	staffRepo staff.Repository
	teamRepo  team.Repository
	now       func() time.Time
}

func NewStaffService(staffRepo staff.Repository, teamRepo team.Repository) *StaffService {
	return &StaffService{staffRepo: staffRepo, teamRepo: teamRepo, now: time.Now}
}

func (s *StaffService) Create(ctx context.Context, member staff.Staff) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.Create")
	defer span.End()

	member.FirstName = strings.TrimSpace(member.FirstName)
	member.MiddleName = strings.TrimSpace(member.MiddleName)
	member.LastName = strings.TrimSpace(member.LastName)
	member.Email = strings.ToLower(strings.TrimSpace(member.Email))
	if member.HiredAt.IsZero() {
		member.HiredAt = s.now().UTC()
	}
	if err := member.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	staffID, err := s.staffRepo.Create(ctx, member)
	if err != nil {
		if errorIsAny(err, staff.ErrEmailTaken) {
			return 0, err
		}
		return 0, fmt.Errorf("create staff: %w", err)
	}

	return staffID, nil
}

func (s *StaffService) List(ctx context.Context) ([]staff.Staff, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.List")
	defer span.End()

	members, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	return members, nil
}

func (s *StaffService) Get(ctx context.Context, staffID int64) (staff.Staff, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.Get")
	defer span.End()

	if staffID <= 0 {
		return staff.Staff{}, fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}

	member, exists, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("get staff %d: %w", staffID, err)
	}
	if !exists {
		return staff.Staff{}, fmt.Errorf("%w: staff %d", ErrNotFound, staffID)
	}

	return member, nil
}

// AttachCoach records coaching detail for an existing staff member of
// the coach type. A team reference, when present, must exist.
func (s *StaffService) AttachCoach(ctx context.Context, c staff.Coach) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.AttachCoach")
	defer span.End()

	if _, err := s.requireStaffOfType(ctx, c.StaffID, staff.TypeCoach); err != nil {
		return err
	}

	c.Role = strings.TrimSpace(c.Role)
	if c.Role == "" {
		return fmt.Errorf("%w: coach role is required", ErrInvalidInput)
	}
	if c.TeamID != nil {
		if _, exists, err := s.teamRepo.GetByID(ctx, *c.TeamID); err != nil {
			return fmt.Errorf("get team %d: %w", *c.TeamID, err)
		} else if !exists {
			return fmt.Errorf("%w: team %d", ErrNotFound, *c.TeamID)
		}
	}

	if err := s.staffRepo.AttachCoach(ctx, c); err != nil {
		return fmt.Errorf("attach coach %d: %w", c.StaffID, err)
	}

	return nil
}

func (s *StaffService) AttachScout(ctx context.Context, sc staff.Scout) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.AttachScout")
	defer span.End()

	if _, err := s.requireStaffOfType(ctx, sc.StaffID, staff.TypeScout); err != nil {
		return err
	}

	sc.Region = strings.TrimSpace(sc.Region)
	if sc.Region == "" {
		return fmt.Errorf("%w: scout region is required", ErrInvalidInput)
	}
	if sc.YearsExperience < 0 {
		return fmt.Errorf("%w: scout years of experience must not be negative", ErrInvalidInput)
	}

	if err := s.staffRepo.AttachScout(ctx, sc); err != nil {
		return fmt.Errorf("attach scout %d: %w", sc.StaffID, err)
	}

	return nil
}

func (s *StaffService) AttachMedic(ctx context.Context, m staff.Medic) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.AttachMedic")
	defer span.End()

	if _, err := s.requireStaffOfType(ctx, m.StaffID, staff.TypeMedical); err != nil {
		return err
	}

	m.Specialization = strings.TrimSpace(m.Specialization)
	if m.Specialization == "" {
		return fmt.Errorf("%w: medic specialization is required", ErrInvalidInput)
	}
	if m.YearsExperience < 0 {
		return fmt.Errorf("%w: medic years of experience must not be negative", ErrInvalidInput)
	}

	if err := s.staffRepo.AttachMedic(ctx, m); err != nil {
		return fmt.Errorf("attach medic %d: %w", m.StaffID, err)
	}

	return nil
}

func (s *StaffService) ListCoaches(ctx context.Context) ([]staff.CoachDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.ListCoaches")
	defer span.End()

	coaches, err := s.staffRepo.ListCoaches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}

	return coaches, nil
}

func (s *StaffService) ListScouts(ctx context.Context) ([]staff.ScoutDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.ListScouts")
	defer span.End()

	scouts, err := s.staffRepo.ListScouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scouts: %w", err)
	}

	return scouts, nil
}

func (s *StaffService) ListMedics(ctx context.Context) ([]staff.MedicDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.ListMedics")
	defer span.End()

	medics, err := s.staffRepo.ListMedics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medical staff: %w", err)
	}

	return medics, nil
}

func (s *StaffService) requireStaffOfType(ctx context.Context, staffID int64, want staff.Type) (staff.Staff, error) {
	if staffID <= 0 {
		return staff.Staff{}, fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}

	member, exists, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("get staff %d: %w", staffID, err)
	}
	if !exists {
		return staff.Staff{}, fmt.Errorf("%w: staff %d", ErrNotFound, staffID)
	}
	if member.StaffType != want {
		return staff.Staff{}, fmt.Errorf("%w: staff %d is %s, not %s", ErrInvalidInput, staffID, member.StaffType, want)
	}

	return member, nil
}
