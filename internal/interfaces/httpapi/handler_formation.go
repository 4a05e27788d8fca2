package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/clubops/clubops/internal/domain/formation"
	"github.com/clubops/clubops/internal/domain/roleslot"
	"github.com/clubops/clubops/internal/usecase"
)

type createFormationRequest struct {
	Code        string                   `json:"code" validate:"required,max=20"`
	DisplayName string                   `json:"displayName" validate:"required,max=100"`
	Overrides   []formationOverrideInput `json:"overrides" validate:"dive"`
}

type formationOverrideInput struct {
	SlotNo int    `json:"slotNo" validate:"required,min=1,max=11"`
	Label  string `json:"label" validate:"required,max=100"`
}

type formationDTO struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	CreatedAt   string `json:"createdAt"`
}

type formationDetailDTO struct {
	formationDTO
	Overrides []roleOverrideDTO `json:"overrides"`
}

type roleOverrideDTO struct {
	SlotNo int    `json:"slotNo"`
	Label  string `json:"label"`
}

type roleSlotDTO struct {
	SlotNo       int    `json:"slotNo"`
	DefaultLabel string `json:"defaultLabel"`
}

func (h *Handler) CreateFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFormation")
	defer span.End()

	var req createFormationRequest
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

	overrides := make(map[int]string, len(req.Overrides))
	for _, o := range req.Overrides {
		if _, taken := overrides[o.SlotNo]; taken {
			writeError(ctx, w, fmt.Errorf("%w: duplicate override for slot %d", usecase.ErrInvalidInput, o.SlotNo))
			return
		}
		overrides[o.SlotNo] = o.Label
	}

	formationID, err := h.formationService.Create(ctx, usecase.CreateFormationInput{
		Code:          req.Code,
		DisplayName:   req.DisplayName,
		RoleOverrides: overrides,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create formation failed", "code", req.Code, "error", err)
		writeError(ctx, w, err)
		return
	}

	detail, err := h.formationService.Get(ctx, formationID)
	if err != nil {
		h.logger.ErrorContext(ctx, "read back created formation failed", "formation_id", formationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, formationDetailToDTO(ctx, detail))
}

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormations")
	defer span.End()

	formations, err := h.formationService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list formations failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]formationDTO, 0, len(formations))
	for _, f := range formations {
		items = append(items, formationToDTO(ctx, f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFormation")
	defer span.End()

	formationID, err := pathID(r, "formationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.formationService.Get(ctx, formationID)
	if err != nil {
		h.logger.WarnContext(ctx, "get formation failed", "formation_id", formationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationDetailToDTO(ctx, detail))
}

func (h *Handler) DeleteFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFormation")
	defer span.End()

	formationID, err := pathID(r, "formationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.formationService.Delete(ctx, formationID); err != nil {
		h.logger.WarnContext(ctx, "delete formation failed", "formation_id", formationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deletedId": formationID})
}

func (h *Handler) ListRoleSlots(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoleSlots")
	defer span.End()

	slots, err := h.formationService.ListRoleSlots(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list role slots failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]roleSlotDTO, 0, len(slots))
	for _, slot := range slots {
		items = append(items, roleSlotToDTO(ctx, slot))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func formationToDTO(ctx context.Context, v formation.Formation) formationDTO {
	ctx, span := startSpan(ctx, "httpapi.formationToDTO")
	defer span.End()

	return formationDTO{
		ID:          v.ID,
		Code:        v.Code,
		DisplayName: v.DisplayName,
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func formationDetailToDTO(ctx context.Context, v usecase.FormationDetail) formationDetailDTO {
	ctx, span := startSpan(ctx, "httpapi.formationDetailToDTO")
	defer span.End()

	overrides := make([]roleOverrideDTO, 0, len(v.Overrides))
	for _, o := range v.Overrides {
		overrides = append(overrides, roleOverrideDTO{SlotNo: o.SlotNo, Label: o.Label})
	}

	return formationDetailDTO{
		formationDTO: formationToDTO(ctx, v.Formation),
		Overrides:    overrides,
	}
}

func roleSlotToDTO(ctx context.Context, v roleslot.RoleSlot) roleSlotDTO {
	ctx, span := startSpan(ctx, "httpapi.roleSlotToDTO")
	defer span.End()

	return roleSlotDTO{SlotNo: v.SlotNo, DefaultLabel: v.DefaultLabel}
}
