package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/clubops/clubops/internal/domain/staff"
	"github.com/clubops/clubops/internal/usecase"
)

type createStaffRequest struct {
	FirstName  string  `json:"firstName" validate:"required,max=100"`
	MiddleName string  `json:"middleName" validate:"max=100"`
	LastName   string  `json:"lastName" validate:"required,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Salary     float64 `json:"salary" validate:"min=0"`
	Age        int     `json:"age" validate:"min=0,max=120"`
	HiredAt    string  `json:"hiredAt" validate:"omitempty,datetime=2006-01-02"`
	StaffType  string  `json:"staffType" validate:"required,oneof=coach scout medical"`
}

type attachCoachRequest struct {
	StaffID int64  `json:"staffId" validate:"required,min=1"`
	Role    string `json:"role" validate:"required,max=100"`
	TeamID  *int64 `json:"teamId" validate:"omitempty,min=1"`
}

type attachScoutRequest struct {
	StaffID         int64  `json:"staffId" validate:"required,min=1"`
	Region          string `json:"region" validate:"required,max=100"`
	YearsExperience int    `json:"yearsExperience" validate:"min=0,max=80"`
}

type attachMedicRequest struct {
	StaffID         int64  `json:"staffId" validate:"required,min=1"`
	Specialization  string `json:"specialization" validate:"required,max=100"`
	Certification   string `json:"certification" validate:"max=100"`
	YearsExperience int    `json:"yearsExperience" validate:"min=0,max=80"`
}

type staffDTO struct {
	ID         int64   `json:"id"`
	FullName   string  `json:"fullName"`
	FirstName  string  `json:"firstName"`
	MiddleName string  `json:"middleName,omitempty"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Salary     float64 `json:"salary"`
	Age        int     `json:"age"`
	HiredAt    string  `json:"hiredAt"`
	StaffType  string  `json:"staffType"`
}

type coachDTO struct {
	Staff  staffDTO `json:"staff"`
	Role   string   `json:"role"`
	TeamID *int64   `json:"teamId,omitempty"`
}

type scoutDTO struct {
	Staff           staffDTO `json:"staff"`
	Region          string   `json:"region"`
	YearsExperience int      `json:"yearsExperience"`
}

type medicDTO struct {
	Staff           staffDTO `json:"staff"`
	Specialization  string   `json:"specialization"`
	Certification   string   `json:"certification"`
	YearsExperience int      `json:"yearsExperience"`
}

func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateStaff")
	defer span.End()

	var req createStaffRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	member := staff.Staff{
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Email:      req.Email,
		Salary:     req.Salary,
		Age:        req.Age,
		StaffType:  staff.Type(req.StaffType),
	}
	if req.HiredAt != "" {
		hiredAt, err := time.Parse(dateLayout, req.HiredAt)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid hire date: %v", usecase.ErrInvalidInput, err))
			return
		}
		member.HiredAt = hiredAt
	}

	staffID, err := h.staffService.Create(ctx, member)
	if err != nil {
		h.logger.WarnContext(ctx, "create staff failed", "email", req.Email, "error", err)
		writeError(ctx, w, err)
		return
	}

	created, err := h.staffService.Get(ctx, staffID)
	if err != nil {
		h.logger.ErrorContext(ctx, "read back created staff failed", "staff_id", staffID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, staffToDTO(ctx, created))
}

func (h *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStaff")
	defer span.End()

	members, err := h.staffService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list staff failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]staffDTO, 0, len(members))
	for _, member := range members {
		items = append(items, staffToDTO(ctx, member))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStaff")
	defer span.End()

	staffID, err := pathID(r, "staffID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	member, err := h.staffService.Get(ctx, staffID)
	if err != nil {
		h.logger.WarnContext(ctx, "get staff failed", "staff_id", staffID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, staffToDTO(ctx, member))
}

func (h *Handler) AttachCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AttachCoach")
	defer span.End()

	var req attachCoachRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err := h.staffService.AttachCoach(ctx, staff.Coach{
		StaffID: req.StaffID,
		Role:    req.Role,
		TeamID:  req.TeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "attach coach failed", "staff_id", req.StaffID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]int64{"staffId": req.StaffID})
}

func (h *Handler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCoaches")
	defer span.End()

	coaches, err := h.staffService.ListCoaches(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list coaches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]coachDTO, 0, len(coaches))
	for _, c := range coaches {
		items = append(items, coachDTO{
			Staff:  staffToDTO(ctx, c.Staff),
			Role:   c.Role,
			TeamID: c.TeamID,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AttachScout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AttachScout")
	defer span.End()

	var req attachScoutRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err := h.staffService.AttachScout(ctx, staff.Scout{
		StaffID:         req.StaffID,
		Region:          req.Region,
		YearsExperience: req.YearsExperience,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "attach scout failed", "staff_id", req.StaffID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]int64{"staffId": req.StaffID})
}

func (h *Handler) ListScouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScouts")
	defer span.End()

	scouts, err := h.staffService.ListScouts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list scouts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scoutDTO, 0, len(scouts))
	for _, sc := range scouts {
		items = append(items, scoutDTO{
			Staff:           staffToDTO(ctx, sc.Staff),
			Region:          sc.Region,
			YearsExperience: sc.YearsExperience,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AttachMedic(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AttachMedic")
	defer span.End()

	var req attachMedicRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err := h.staffService.AttachMedic(ctx, staff.Medic{
		StaffID:         req.StaffID,
		Specialization:  req.Specialization,
		Certification:   req.Certification,
		YearsExperience: req.YearsExperience,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "attach medic failed", "staff_id", req.StaffID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]int64{"staffId": req.StaffID})
}

func (h *Handler) ListMedics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMedics")
	defer span.End()

	medics, err := h.staffService.ListMedics(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list medics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]medicDTO, 0, len(medics))
	for _, m := range medics {
		items = append(items, medicDTO{
			Staff:           staffToDTO(ctx, m.Staff),
			Specialization:  m.Specialization,
			Certification:   m.Certification,
			YearsExperience: m.YearsExperience,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func staffToDTO(ctx context.Context, v staff.Staff) staffDTO {
	ctx, span := startSpan(ctx, "httpapi.staffToDTO")
	defer span.End()

	return staffDTO{
		ID:         v.ID,
		FullName:   v.FullName(),
		FirstName:  v.FirstName,
		MiddleName: v.MiddleName,
		LastName:   v.LastName,
		Email:      v.Email,
		Salary:     v.Salary,
		Age:        v.Age,
		HiredAt:    v.HiredAt.UTC().Format(time.RFC3339),
		StaffType:  string(v.StaffType),
	}
}
