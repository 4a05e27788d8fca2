package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clubops/clubops/internal/domain/formation"
	"github.com/clubops/clubops/internal/domain/lineup"
	"github.com/clubops/clubops/internal/domain/match"
	"github.com/clubops/clubops/internal/domain/player"
	"github.com/clubops/clubops/internal/domain/roleslot"
	"github.com/clubops/clubops/internal/domain/team"
	"github.com/clubops/clubops/internal/platform/logging"
)

type LineupSlotInput struct {
	SlotNo       int
	PlayerID     int64
	JerseyNumber *int
	IsCaptain    bool
}

type CreateLineupInput struct {
	MatchID       int64
	TeamID        int64
	FormationID   int64
	IsStarting    bool
	MinuteApplied int
	Slots         []LineupSlotInput
}

// LineupDetail is a lineup header with its slot assignments.
type LineupDetail struct {
	Lineup      lineup.Lineup
	Formation   formation.Formation
	Assignments []lineup.SlotAssignment
}

// LineupSummary is a lineup header joined with the names a team sheet
// listing shows.
type LineupSummary struct {
	Lineup        lineup.Lineup
	FormationCode string
	MatchName     string
	TeamName      string
}

// LineupService builds and reads lineups. Create materializes the header
// and the full assignment set as one atomic unit.
type LineupService struct {
	lineupRepo    lineup.Repository
	formationRepo formation.Repository
	roleSlotRepo  roleslot.Repository
	playerRepo    player.Repository
	teamRepo      team.Repository
	matchRepo     match.Repository
	logger        *logging.Logger
	now           func() time.Time
}

func NewLineupService(
	lineupRepo lineup.Repository,
	formationRepo formation.Repository,
	roleSlotRepo roleslot.Repository,
	playerRepo player.Repository,
	teamRepo team.Repository,
	matchRepo match.Repository,
	logger *logging.Logger,
) *LineupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LineupService{
		lineupRepo:    lineupRepo,
		formationRepo: formationRepo,
		roleSlotRepo:  roleSlotRepo,
		playerRepo:    playerRepo,
		teamRepo:      teamRepo,
		matchRepo:     matchRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// Create validates the payload, checks every reference, then persists
// the lineup atomically. Validation failures surface before any write;
// the store is the final arbiter for races the prechecks cannot see.
func (s *LineupService) Create(ctx context.Context, input CreateLineupInput) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Create")
	defer span.End()

	header := lineup.Lineup{
		MatchID:       input.MatchID,
		TeamID:        input.TeamID,
		FormationID:   input.FormationID,
		IsStarting:    input.IsStarting,
		MinuteApplied: input.MinuteApplied,
		CreatedAt:     s.now().UTC(),
	}
	if err := lineup.ValidateHeader(header); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	assignments := make([]lineup.SlotAssignment, 0, len(input.Slots))
	for _, slot := range input.Slots {
		assignments = append(assignments, lineup.SlotAssignment{
			SlotNo:       slot.SlotNo,
			PlayerID:     slot.PlayerID,
			JerseyNumber: slot.JerseyNumber,
			IsCaptain:    slot.IsCaptain,
		})
	}
	if err := lineup.ValidateAssignments(assignments); err != nil {
		return 0, err
	}

	if _, exists, err := s.matchRepo.GetByID(ctx, input.MatchID); err != nil {
		return 0, fmt.Errorf("get match %d: %w", input.MatchID, err)
	} else if !exists {
		return 0, fmt.Errorf("%w: match %d", ErrNotFound, input.MatchID)
	}
	if _, exists, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
		return 0, fmt.Errorf("get team %d: %w", input.TeamID, err)
	} else if !exists {
		return 0, fmt.Errorf("%w: team %d", ErrNotFound, input.TeamID)
	}
	if _, exists, err := s.formationRepo.GetByID(ctx, input.FormationID); err != nil {
		return 0, fmt.Errorf("get formation %d: %w", input.FormationID, err)
	} else if !exists {
		return 0, fmt.Errorf("%w: formation %d", ErrNotFound, input.FormationID)
	}

	playerIDs := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		playerIDs = append(playerIDs, a.PlayerID)
	}
	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return 0, fmt.Errorf("get players by ids: %w", err)
	}
	found := make(map[int64]struct{}, len(players))
	for _, p := range players {
		found[p.ID] = struct{}{}
	}
	for _, id := range playerIDs {
		if _, ok := found[id]; !ok {
			return 0, fmt.Errorf("%w: player %d", ErrNotFound, id)
		}
	}

	if input.IsStarting && len(assignments) != lineup.StartingSize {
		s.logger.WarnContext(ctx, "starting lineup without full eleven",
			"match_id", input.MatchID,
			"team_id", input.TeamID,
			"slot_count", len(assignments),
		)
	}

	lineupID, err := s.lineupRepo.CreateWithSlots(ctx, header, assignments)
	if err != nil {
		return 0, classifyLineupWriteError(err)
	}

	return lineupID, nil
}

// Get returns a lineup header with its assignments ordered by slot.
func (s *LineupService) Get(ctx context.Context, lineupID int64) (LineupDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Get")
	defer span.End()

	if lineupID <= 0 {
		return LineupDetail{}, fmt.Errorf("%w: lineup id is required", ErrInvalidInput)
	}

	header, assignments, exists, err := s.lineupRepo.GetByID(ctx, lineupID)
	if err != nil {
		return LineupDetail{}, fmt.Errorf("get lineup %d: %w", lineupID, err)
	}
	if !exists {
		return LineupDetail{}, fmt.Errorf("%w: lineup %d", ErrNotFound, lineupID)
	}

	f, _, err := s.formationRepo.GetByID(ctx, header.FormationID)
	if err != nil {
		return LineupDetail{}, fmt.Errorf("get formation %d: %w", header.FormationID, err)
	}

	sort.Slice(assignments, func(i, j int) bool { return assignments[i].SlotNo < assignments[j].SlotNo })

	return LineupDetail{Lineup: header, Formation: f, Assignments: assignments}, nil
}

// List returns lineup headers joined with the names shown in a
// listing: formation code, match name, team name. A positive matchID
// narrows the listing to that match.
func (s *LineupService) List(ctx context.Context, matchID int64) ([]LineupSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.List")
	defer span.End()

	var headers []lineup.Lineup
	var err error
	if matchID > 0 {
		headers, err = s.lineupRepo.ListByMatch(ctx, matchID)
		if err != nil {
			return nil, fmt.Errorf("list lineups for match %d: %w", matchID, err)
		}
	} else {
		headers, err = s.lineupRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list lineups: %w", err)
		}
	}

	out := make([]LineupSummary, 0, len(headers))
	for _, h := range headers {
		summary := LineupSummary{Lineup: h}
		if f, ok, err := s.formationRepo.GetByID(ctx, h.FormationID); err == nil && ok {
			summary.FormationCode = f.Code
		}
		if m, ok, err := s.matchRepo.GetByID(ctx, h.MatchID); err == nil && ok {
			summary.MatchName = m.Name
		}
		if t, ok, err := s.teamRepo.GetByID(ctx, h.TeamID); err == nil && ok {
			summary.TeamName = t.Name
		}
		out = append(out, summary)
	}

	return out, nil
}

// ResolveRoles reconstructs the human-readable team sheet for a lineup:
// for every assignment the formation override label wins, otherwise the
// slot catalog default applies. Output ordered by slot number.
func (s *LineupService) ResolveRoles(ctx context.Context, lineupID int64) ([]lineup.ResolvedSlot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.ResolveRoles")
	defer span.End()

	if lineupID <= 0 {
		return nil, fmt.Errorf("%w: lineup id is required", ErrInvalidInput)
	}

	header, assignments, exists, err := s.lineupRepo.GetByID(ctx, lineupID)
	if err != nil {
		return nil, fmt.Errorf("get lineup %d: %w", lineupID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: lineup %d", ErrNotFound, lineupID)
	}

	slots, err := s.roleSlotRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list role slots: %w", err)
	}
	defaults := make(map[int]string, len(slots))
	for _, slot := range slots {
		defaults[slot.SlotNo] = slot.DefaultLabel
	}

	overrides, err := s.formationRepo.ListOverrides(ctx, header.FormationID)
	if err != nil {
		return nil, fmt.Errorf("list formation overrides: %w", err)
	}
	labels := formation.LabelIndex(overrides)

	playerIDs := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		playerIDs = append(playerIDs, a.PlayerID)
	}
	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}
	names := make(map[int64]string, len(players))
	for _, p := range players {
		names[p.ID] = p.FullName()
	}

	out := make([]lineup.ResolvedSlot, 0, len(assignments))
	for _, a := range assignments {
		label, overridden := labels[a.SlotNo]
		if !overridden {
			label = defaults[a.SlotNo]
		}
		out = append(out, lineup.ResolvedSlot{
			SlotNo:         a.SlotNo,
			EffectiveLabel: label,
			PlayerID:       a.PlayerID,
			PlayerName:     names[a.PlayerID],
			JerseyNumber:   a.JerseyNumber,
			IsCaptain:      a.IsCaptain,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotNo < out[j].SlotNo })

	return out, nil
}

// classifyLineupWriteError keeps constraint violations raised by the
// store in their domain shape and wraps everything else as a plain
// storage failure.
func classifyLineupWriteError(err error) error {
	switch {
	case errorIsAny(err, lineup.ErrDuplicateSlot, lineup.ErrDuplicatePlayer, lineup.ErrMissingReference):
		return err
	case errorIsAny(err, ErrNotFound, ErrConflict):
		return err
	default:
		return fmt.Errorf("create lineup: %w", err)
	}
}
