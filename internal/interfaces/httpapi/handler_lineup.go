package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/clubops/clubops/internal/domain/lineup"
	"github.com/clubops/clubops/internal/usecase"
)

type createLineupRequest struct {
	MatchID       int64             `json:"matchId" validate:"required,min=1"`
	TeamID        int64             `json:"teamId" validate:"required,min=1"`
	FormationID   int64             `json:"formationId" validate:"required,min=1"`
	IsStarting    bool              `json:"isStarting"`
	MinuteApplied int               `json:"minuteApplied" validate:"min=0"`
	Slots         []lineupSlotInput `json:"slots" validate:"required,min=1,dive"`
}

type lineupSlotInput struct {
	SlotNo       int   `json:"slotNo" validate:"required,min=1,max=11"`
	PlayerID     int64 `json:"playerId" validate:"required,min=1"`
	JerseyNumber *int  `json:"jerseyNumber" validate:"omitempty,min=1,max=99"`
	IsCaptain    bool  `json:"isCaptain"`
}

type lineupHeaderDTO struct {
	ID            int64  `json:"id"`
	MatchID       int64  `json:"matchId"`
	TeamID        int64  `json:"teamId"`
	FormationID   int64  `json:"formationId"`
	IsStarting    bool   `json:"isStarting"`
	MinuteApplied int    `json:"minuteApplied"`
	CreatedAt     string `json:"createdAt"`
}

type lineupDetailDTO struct {
	lineupHeaderDTO
	FormationCode string              `json:"formationCode"`
	Slots         []slotAssignmentDTO `json:"slots"`
}

type slotAssignmentDTO struct {
	SlotNo       int   `json:"slotNo"`
	PlayerID     int64 `json:"playerId"`
	JerseyNumber *int  `json:"jerseyNumber,omitempty"`
	IsCaptain    bool  `json:"isCaptain"`
}

type lineupSummaryDTO struct {
	lineupHeaderDTO
	FormationCode string `json:"formationCode"`
	MatchName     string `json:"matchName"`
	TeamName      string `json:"teamName"`
}

type resolvedSlotDTO struct {
	SlotNo         int    `json:"slotNo"`
	EffectiveLabel string `json:"effectiveLabel"`
	PlayerID       int64  `json:"playerId"`
	PlayerName     string `json:"playerName"`
	JerseyNumber   *int   `json:"jerseyNumber,omitempty"`
	IsCaptain      bool   `json:"isCaptain"`
}

func (h *Handler) CreateLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLineup")
	defer span.End()

	var req createLineupRequest
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

	slots := make([]usecase.LineupSlotInput, 0, len(req.Slots))
	for _, s := range req.Slots {
		slots = append(slots, usecase.LineupSlotInput{
			SlotNo:       s.SlotNo,
			PlayerID:     s.PlayerID,
			JerseyNumber: s.JerseyNumber,
			IsCaptain:    s.IsCaptain,
		})
	}

	lineupID, err := h.lineupService.Create(ctx, usecase.CreateLineupInput{
		MatchID:       req.MatchID,
		TeamID:        req.TeamID,
		FormationID:   req.FormationID,
		IsStarting:    req.IsStarting,
		MinuteApplied: req.MinuteApplied,
		Slots:         slots,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create lineup failed", "match_id", req.MatchID, "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	detail, err := h.lineupService.Get(ctx, lineupID)
	if err != nil {
		h.logger.ErrorContext(ctx, "read back created lineup failed", "lineup_id", lineupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, lineupDetailToDTO(ctx, detail))
}

func (h *Handler) ListLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLineups")
	defer span.End()

	var matchID int64
	if raw := strings.TrimSpace(r.URL.Query().Get("match_id")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: invalid match_id %q", usecase.ErrInvalidInput, raw))
			return
		}
		matchID = parsed
	}

	summaries, err := h.lineupService.List(ctx, matchID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list lineups failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]lineupSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, lineupSummaryDTO{
			lineupHeaderDTO: lineupHeaderToDTO(ctx, s.Lineup),
			FormationCode:   s.FormationCode,
			MatchName:       s.MatchName,
			TeamName:        s.TeamName,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineup")
	defer span.End()

	lineupID, err := pathID(r, "lineupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.lineupService.Get(ctx, lineupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineup failed", "lineup_id", lineupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupDetailToDTO(ctx, detail))
}

func (h *Handler) ResolveLineupRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveLineupRoles")
	defer span.End()

	lineupID, err := pathID(r, "lineupID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	resolved, err := h.lineupService.ResolveRoles(ctx, lineupID)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve lineup roles failed", "lineup_id", lineupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]resolvedSlotDTO, 0, len(resolved))
	for _, slot := range resolved {
		items = append(items, resolvedSlotDTO{
			SlotNo:         slot.SlotNo,
			EffectiveLabel: slot.EffectiveLabel,
			PlayerID:       slot.PlayerID,
			PlayerName:     slot.PlayerName,
			JerseyNumber:   slot.JerseyNumber,
			IsCaptain:      slot.IsCaptain,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func lineupHeaderToDTO(ctx context.Context, v lineup.Lineup) lineupHeaderDTO {
	ctx, span := startSpan(ctx, "httpapi.lineupHeaderToDTO")
	defer span.End()

	return lineupHeaderDTO{
		ID:            v.ID,
		MatchID:       v.MatchID,
		TeamID:        v.TeamID,
		FormationID:   v.FormationID,
		IsStarting:    v.IsStarting,
		MinuteApplied: v.MinuteApplied,
		CreatedAt:     v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func lineupDetailToDTO(ctx context.Context, v usecase.LineupDetail) lineupDetailDTO {
	ctx, span := startSpan(ctx, "httpapi.lineupDetailToDTO")
	defer span.End()

	slots := make([]slotAssignmentDTO, 0, len(v.Assignments))
	for _, a := range v.Assignments {
		slots = append(slots, slotAssignmentDTO{
			SlotNo:       a.SlotNo,
			PlayerID:     a.PlayerID,
			JerseyNumber: a.JerseyNumber,
			IsCaptain:    a.IsCaptain,
		})
	}

	return lineupDetailDTO{
		lineupHeaderDTO: lineupHeaderToDTO(ctx, v.Lineup),
		FormationCode:   v.Formation.Code,
		Slots:           slots,
	}
}
