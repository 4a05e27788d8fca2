package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/clubops/clubops/internal/platform/logging"
	"github.com/clubops/clubops/internal/usecase"
)

type Handler struct {
	formationService *usecase.FormationService
	lineupService    *usecase.LineupService
	playerService    *usecase.PlayerService
	teamService      *usecase.TeamService
	matchService     *usecase.MatchService
	staffService     *usecase.StaffService
	medicalService   *usecase.MedicalService
	scoutingService  *usecase.ScoutingService
	statsService     *usecase.StatsService
	auditService     *usecase.AuditService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	formationService *usecase.FormationService,
	lineupService *usecase.LineupService,
	playerService *usecase.PlayerService,
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	staffService *usecase.StaffService,
	medicalService *usecase.MedicalService,
	scoutingService *usecase.ScoutingService,
	statsService *usecase.StatsService,
	auditService *usecase.AuditService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		formationService: formationService,
		lineupService:    lineupService,
		playerService:    playerService,
		teamService:      teamService,
		matchService:     matchService,
		staffService:     staffService,
		medicalService:   medicalService,
		scoutingService:  scoutingService,
		statsService:     statsService,
		auditService:     auditService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}
