package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/clubops/clubops/internal/domain/match"
	"github.com/clubops/clubops/internal/domain/player"
	"github.com/clubops/clubops/internal/domain/team"
	"github.com/clubops/clubops/internal/usecase"
)

const dateLayout = "2006-01-02"

type createPlayerRequest struct {
	FirstName       string   `json:"firstName" validate:"required,max=100"`
	MiddleName      string   `json:"middleName" validate:"max=100"`
	LastName        string   `json:"lastName" validate:"required,max=100"`
	Salary          float64  `json:"salary" validate:"min=0"`
	Positions       string   `json:"positions" validate:"required,max=50"`
	IsActive        *bool    `json:"isActive"`
	IsInjured       bool     `json:"isInjured"`
	TransferValue   *float64 `json:"transferValue" validate:"omitempty,min=0"`
	ContractEndDate string   `json:"contractEndDate" validate:"omitempty,datetime=2006-01-02"`
	IsScoutTarget   bool     `json:"isScoutTarget"`
}

type createTeamRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	League  string `json:"league" validate:"max=100"`
	Stadium string `json:"stadium" validate:"max=100"`
}

type createMatchRequest struct {
	Name      string `json:"name" validate:"required,max=150"`
	Venue     string `json:"venue" validate:"max=150"`
	Opponent  string `json:"opponent" validate:"required,max=100"`
	MatchDate string `json:"matchDate" validate:"required,datetime=2006-01-02"`
	KickoffAt string `json:"kickoffAt" validate:"omitempty"`
}

type recordMatchResultRequest struct {
	Result string `json:"result" validate:"required,max=50"`
}

type playerDTO struct {
	ID              int64    `json:"id"`
	FullName        string   `json:"fullName"`
	FirstName       string   `json:"firstName"`
	MiddleName      string   `json:"middleName,omitempty"`
	LastName        string   `json:"lastName"`
	Salary          float64  `json:"salary"`
	Positions       string   `json:"positions"`
	IsActive        bool     `json:"isActive"`
	IsInjured       bool     `json:"isInjured"`
	TransferValue   *float64 `json:"transferValue,omitempty"`
	ContractEndDate string   `json:"contractEndDate,omitempty"`
	IsScoutTarget   bool     `json:"isScoutTarget"`
}

type playerDetailDTO struct {
	playerDTO
	MedicalReports []medicalReportDTO `json:"medicalReports"`
	MatchStats     []statLineDTO      `json:"matchStats"`
}

type teamDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	League    string `json:"league"`
	Stadium   string `json:"stadium"`
	CreatedAt string `json:"createdAt"`
}

type matchDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Venue     string `json:"venue"`
	Opponent  string `json:"opponent"`
	MatchDate string `json:"matchDate"`
	KickoffAt string `json:"kickoffAt,omitempty"`
	Result    string `json:"result,omitempty"`
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
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

	p := player.Player{
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		LastName:      req.LastName,
		Salary:        req.Salary,
		Positions:     req.Positions,
		IsActive:      true,
		IsInjured:     req.IsInjured,
		TransferValue: req.TransferValue,
		IsScoutTarget: req.IsScoutTarget,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.ContractEndDate != "" {
		contractEnd, err := time.Parse(dateLayout, req.ContractEndDate)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid contract end date: %v", usecase.ErrInvalidInput, err))
			return
		}
		p.ContractEndDate = &contractEnd
	}

	playerID, err := h.playerService.Create(ctx, p)
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "last_name", req.LastName, "error", err)
		writeError(ctx, w, err)
		return
	}

	p.ID = playerID
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(ctx, p))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDetail")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.playerService.GetDetail(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player detail failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	reports := make([]medicalReportDTO, 0, len(detail.MedicalReports))
	for _, report := range detail.MedicalReports {
		reports = append(reports, medicalReportToDTO(ctx, report))
	}
	lines := make([]statLineDTO, 0, len(detail.MatchStats))
	for _, line := range detail.MatchStats {
		lines = append(lines, statLineToDTO(ctx, line))
	}

	writeSuccess(ctx, w, http.StatusOK, playerDetailDTO{
		playerDTO:      playerToDTO(ctx, detail.Player),
		MedicalReports: reports,
		MatchStats:     lines,
	})
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
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

	t := team.Team{Name: req.Name, League: req.League, Stadium: req.Stadium}
	teamID, err := h.teamService.Create(ctx, t)
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.Get(ctx, teamID)
	if err != nil {
		h.logger.ErrorContext(ctx, "read back created team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(ctx, created))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
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

	matchDate, err := time.Parse(dateLayout, req.MatchDate)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid match date: %v", usecase.ErrInvalidInput, err))
		return
	}

	m := match.Match{
		Name:      req.Name,
		Venue:     req.Venue,
		Opponent:  req.Opponent,
		MatchDate: matchDate,
	}
	if req.KickoffAt != "" {
		kickoff, err := time.Parse(time.RFC3339, req.KickoffAt)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: invalid kickoff time: %v", usecase.ErrInvalidInput, err))
			return
		}
		m.KickoffAt = &kickoff
	}

	matchID, err := h.matchService.Create(ctx, m)
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.ErrorContext(ctx, "read back created match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(ctx, created))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(ctx, m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingMatches")
	defer span.End()

	matches, err := h.matchService.ListUpcoming(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list upcoming matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(ctx, m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(ctx, m))
}

func (h *Handler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchResult")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req recordMatchResultRequest
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

	if err := h.matchService.RecordResult(ctx, matchID, req.Result); err != nil {
		h.logger.WarnContext(ctx, "record match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.ErrorContext(ctx, "read back match after result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(ctx, updated))
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	dto := playerDTO{
		ID:            v.ID,
		FullName:      v.FullName(),
		FirstName:     v.FirstName,
		MiddleName:    v.MiddleName,
		LastName:      v.LastName,
		Salary:        v.Salary,
		Positions:     v.Positions,
		IsActive:      v.IsActive,
		IsInjured:     v.IsInjured,
		TransferValue: v.TransferValue,
		IsScoutTarget: v.IsScoutTarget,
	}
	if v.ContractEndDate != nil {
		dto.ContractEndDate = v.ContractEndDate.Format(dateLayout)
	}
	return dto
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	return teamDTO{
		ID:        v.ID,
		Name:      v.Name,
		League:    v.League,
		Stadium:   v.Stadium,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func matchToDTO(ctx context.Context, v match.Match) matchDTO {
	ctx, span := startSpan(ctx, "httpapi.matchToDTO")
	defer span.End()

	dto := matchDTO{
		ID:        v.ID,
		Name:      v.Name,
		Venue:     v.Venue,
		Opponent:  v.Opponent,
		MatchDate: v.MatchDate.Format(dateLayout),
		Result:    v.Result,
	}
	if v.KickoffAt != nil {
		dto.KickoffAt = v.KickoffAt.UTC().Format(time.RFC3339)
	}
	return dto
}
