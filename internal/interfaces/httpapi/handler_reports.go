package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/clubops/clubops/internal/domain/medical"
	"github.com/clubops/clubops/internal/domain/scouting"
	"github.com/clubops/clubops/internal/domain/stats"
	"github.com/clubops/clubops/internal/usecase"
)

type createMedicalReportRequest struct {
	PlayerID   int64  `json:"playerId" validate:"required,min=1"`
	Summary    string `json:"summary" validate:"required,max=2000"`
	ReportDate string `json:"reportDate" validate:"required,datetime=2006-01-02"`
	Treatment  string `json:"treatment" validate:"max=2000"`
	Severity   string `json:"severity" validate:"max=50"`
}

type addMedicalConditionRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	DiagnosedOn string `json:"diagnosedOn" validate:"omitempty,datetime=2006-01-02"`
}

type createScoutingReportRequest struct {
	ScoutID          int64  `json:"scoutId" validate:"required,min=1"`
	TargetPlayerName string `json:"targetPlayerName" validate:"required,max=200"`
	TargetPlayerID   *int64 `json:"targetPlayerId" validate:"omitempty,min=1"`
	ReportDate       string `json:"reportDate" validate:"required,datetime=2006-01-02"`
	Notes            string `json:"notes" validate:"max=5000"`
}

type recordStatLineRequest struct {
	PlayerID          int64   `json:"playerId" validate:"required,min=1"`
	MatchID           int64   `json:"matchId" validate:"required,min=1"`
	TeamID            int64   `json:"teamId" validate:"required,min=1"`
	Started           bool    `json:"started"`
	Minutes           int     `json:"minutes" validate:"min=0,max=130"`
	Goals             int     `json:"goals" validate:"min=0"`
	Assists           int     `json:"assists" validate:"min=0"`
	Tackles           int     `json:"tackles" validate:"min=0"`
	ShotsTotal        int     `json:"shotsTotal" validate:"min=0"`
	Offsides          int     `json:"offsides" validate:"min=0"`
	YellowCards       int     `json:"yellowCards" validate:"min=0,max=2"`
	RedCards          int     `json:"redCards" validate:"min=0,max=1"`
	FoulsCommitted    int     `json:"foulsCommitted" validate:"min=0"`
	DribblesAttempted int     `json:"dribblesAttempted" validate:"min=0"`
	PassingAccuracy   float64 `json:"passingAccuracy" validate:"min=0,max=100"`
}

type medicalReportDTO struct {
	ID         int64                 `json:"id"`
	PlayerID   int64                 `json:"playerId"`
	Summary    string                `json:"summary"`
	ReportDate string                `json:"reportDate"`
	Treatment  string                `json:"treatment,omitempty"`
	Severity   string                `json:"severity,omitempty"`
	Conditions []medicalConditionDTO `json:"conditions"`
}

type medicalConditionDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DiagnosedOn string `json:"diagnosedOn,omitempty"`
}

type scoutingReportDTO struct {
	ID               int64  `json:"id"`
	ScoutID          int64  `json:"scoutId"`
	TargetPlayerName string `json:"targetPlayerName"`
	TargetPlayerID   *int64 `json:"targetPlayerId,omitempty"`
	ReportDate       string `json:"reportDate"`
	Notes            string `json:"notes,omitempty"`
}

type statLineDTO struct {
	ID                int64   `json:"id"`
	PlayerID          int64   `json:"playerId"`
	MatchID           int64   `json:"matchId"`
	TeamID            int64   `json:"teamId"`
	Started           bool    `json:"started"`
	Minutes           int     `json:"minutes"`
	Goals             int     `json:"goals"`
	Assists           int     `json:"assists"`
	Tackles           int     `json:"tackles"`
	ShotsTotal        int     `json:"shotsTotal"`
	Offsides          int     `json:"offsides"`
	YellowCards       int     `json:"yellowCards"`
	RedCards          int     `json:"redCards"`
	FoulsCommitted    int     `json:"foulsCommitted"`
	DribblesAttempted int     `json:"dribblesAttempted"`
	PassingAccuracy   float64 `json:"passingAccuracy"`
	MatchName         string  `json:"matchName,omitempty"`
	Opponent          string  `json:"opponent,omitempty"`
	MatchDate         string  `json:"matchDate,omitempty"`
	MatchResult       string  `json:"matchResult,omitempty"`
}

func (h *Handler) CreateMedicalReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMedicalReport")
	defer span.End()

	var req createMedicalReportRequest
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

	reportDate, err := time.Parse(dateLayout, req.ReportDate)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid report date: %v", usecase.ErrInvalidInput, err))
		return
	}

	reportID, err := h.medicalService.CreateReport(ctx, medical.Report{
		PlayerID:   req.PlayerID,
		Summary:    req.Summary,
		ReportDate: reportDate,
		Treatment:  req.Treatment,
		Severity:   req.Severity,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create medical report failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]int64{"reportId": reportID})
}

func (h *Handler) ListMedicalReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMedicalReports")
	defer span.End()

	reports, err := h.medicalService.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list medical reports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]medicalReportDTO, 0, len(reports))
	for _, report := range reports {
		items = append(items, medicalReportToDTO(ctx, report))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AddMedicalCondition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMedicalCondition")
	defer span.End()

	reportID, err := pathID(r, "reportID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addMedicalConditionRequest
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

	c := medical.Condition{
		ReportID:    reportID,
		Name:        req.Name,
		Description: req.Description,
	}
	if req.DiagnosedOn != "" {
		diagnosedOn, err := time.Parse(dateLayout, req.DiagnosedOn)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid diagnosis date: %v", usecase.ErrInvalidInput, err))
			return
		}
		c.DiagnosedOn = &diagnosedOn
	}

	conditionID, err := h.medicalService.AddCondition(ctx, c)
	if err != nil {
		h.logger.WarnContext(ctx, "add medical condition failed", "report_id", reportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]int64{"conditionId": conditionID})
}

func (h *Handler) ListPlayerMedicalReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerMedicalReports")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	reports, err := h.medicalService.ListByPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player medical reports failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]medicalReportDTO, 0, len(reports))
	for _, report := range reports {
		items = append(items, medicalReportToDTO(ctx, report))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateScoutingReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateScoutingReport")
	defer span.End()

	var req createScoutingReportRequest
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

	reportDate, err := time.Parse(dateLayout, req.ReportDate)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid report date: %v", usecase.ErrInvalidInput, err))
		return
	}

	reportID, err := h.scoutingService.Create(ctx, scouting.Report{
		ScoutID:          req.ScoutID,
		TargetPlayerName: req.TargetPlayerName,
		TargetPlayerID:   req.TargetPlayerID,
		ReportDate:       reportDate,
		Notes:            req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create scouting report failed", "scout_id", req.ScoutID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]int64{"reportId": reportID})
}

func (h *Handler) ListScoutingReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScoutingReports")
	defer span.End()

	var scoutID int64
	if raw := strings.TrimSpace(r.URL.Query().Get("scout_id")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: invalid scout_id %q", usecase.ErrInvalidInput, raw))
			return
		}
		scoutID = parsed
	}

	reports, err := h.scoutingService.List(ctx, scoutID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list scouting reports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scoutingReportDTO, 0, len(reports))
	for _, report := range reports {
		items = append(items, scoutingReportToDTO(ctx, report))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RecordPlayerMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordPlayerMatchStats")
	defer span.End()

	var req recordStatLineRequest
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

	lineID, err := h.statsService.Record(ctx, stats.PlayerMatchLine{
		PlayerID:          req.PlayerID,
		MatchID:           req.MatchID,
		TeamID:            req.TeamID,
		Started:           req.Started,
		Minutes:           req.Minutes,
		Goals:             req.Goals,
		Assists:           req.Assists,
		Tackles:           req.Tackles,
		ShotsTotal:        req.ShotsTotal,
		Offsides:          req.Offsides,
		YellowCards:       req.YellowCards,
		RedCards:          req.RedCards,
		FoulsCommitted:    req.FoulsCommitted,
		DribblesAttempted: req.DribblesAttempted,
		PassingAccuracy:   req.PassingAccuracy,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record stat line failed", "player_id", req.PlayerID, "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, map[string]int64{"statLineId": lineID})
}

func (h *Handler) ListPlayerMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerMatchStats")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lines, err := h.statsService.ListByPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]statLineDTO, 0, len(lines))
	for _, line := range lines {
		items = append(items, statLineToDTO(ctx, line))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func medicalReportToDTO(ctx context.Context, v medical.ReportDetail) medicalReportDTO {
	ctx, span := startSpan(ctx, "httpapi.medicalReportToDTO")
	defer span.End()

	conditions := make([]medicalConditionDTO, 0, len(v.Conditions))
	for _, c := range v.Conditions {
		dto := medicalConditionDTO{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		}
		if c.DiagnosedOn != nil {
			dto.DiagnosedOn = c.DiagnosedOn.Format(dateLayout)
		}
		conditions = append(conditions, dto)
	}

	return medicalReportDTO{
		ID:         v.ID,
		PlayerID:   v.PlayerID,
		Summary:    v.Summary,
		ReportDate: v.ReportDate.Format(dateLayout),
		Treatment:  v.Treatment,
		Severity:   v.Severity,
		Conditions: conditions,
	}
}

func scoutingReportToDTO(ctx context.Context, v scouting.Report) scoutingReportDTO {
	ctx, span := startSpan(ctx, "httpapi.scoutingReportToDTO")
	defer span.End()

	return scoutingReportDTO{
		ID:               v.ID,
		ScoutID:          v.ScoutID,
		TargetPlayerName: v.TargetPlayerName,
		TargetPlayerID:   v.TargetPlayerID,
		ReportDate:       v.ReportDate.Format(dateLayout),
		Notes:            v.Notes,
	}
}

func statLineToDTO(ctx context.Context, v stats.LineDetail) statLineDTO {
	ctx, span := startSpan(ctx, "httpapi.statLineToDTO")
	defer span.End()

	return statLineDTO{
		ID:                v.ID,
		PlayerID:          v.PlayerID,
		MatchID:           v.MatchID,
		TeamID:            v.TeamID,
		Started:           v.Started,
		Minutes:           v.Minutes,
		Goals:             v.Goals,
		Assists:           v.Assists,
		Tackles:           v.Tackles,
		ShotsTotal:        v.ShotsTotal,
		Offsides:          v.Offsides,
		YellowCards:       v.YellowCards,
		RedCards:          v.RedCards,
		FoulsCommitted:    v.FoulsCommitted,
		DribblesAttempted: v.DribblesAttempted,
		PassingAccuracy:   v.PassingAccuracy,
		MatchName:         v.Match.MatchName,
		Opponent:          v.Match.Opponent,
		MatchDate:         v.Match.MatchDate,
		MatchResult:       v.Match.Result,
	}
}
