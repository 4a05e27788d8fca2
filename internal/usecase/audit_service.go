package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/clubops/clubops/internal/domain/lineup"
	"github.com/clubops/clubops/internal/domain/roleslot"
	"github.com/clubops/clubops/internal/platform/id"
	"github.com/clubops/clubops/internal/platform/logging"
)

const defaultAuditWorkers = 4

type AuditIssue struct {
	LineupID int64
	Kind     string
	Detail   string
}

type AuditReport struct {
	RunID       string
	LineupCount int
	Issues      []AuditIssue
}

// AuditService re-checks persisted lineups against the invariants the
// write path enforces. The store's constraints should make every sweep
// come back clean; a non-empty report means data arrived through a side
// channel or a migration went wrong.
type AuditService struct {
	lineupRepo lineup.Repository
	logger     *logging.Logger
	workers    int
}

func NewAuditService(lineupRepo lineup.Repository, logger *logging.Logger, workers int) *AuditService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultAuditWorkers
	}
	return &AuditService{lineupRepo: lineupRepo, logger: logger, workers: workers}
}

// Audit sweeps every lineup on a bounded worker pool and reports
// integrity issues found.
func (s *AuditService) Audit(ctx context.Context) (AuditReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuditService.Audit")
	defer span.End()

	runID, err := id.New()
	if err != nil {
		return AuditReport{}, fmt.Errorf("generate audit run id: %w", err)
	}

	headers, err := s.lineupRepo.List(ctx)
	if err != nil {
		return AuditReport{}, fmt.Errorf("list lineups for audit: %w", err)
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return AuditReport{}, fmt.Errorf("start audit worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu     sync.Mutex
		issues []AuditIssue
		wg     sync.WaitGroup
	)
	record := func(found []AuditIssue) {
		if len(found) == 0 {
			return
		}
		mu.Lock()
		issues = append(issues, found...)
		mu.Unlock()
	}

	for _, header := range headers {
		lineupID := header.ID
		isStarting := header.IsStarting
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			found, err := s.auditLineup(ctx, lineupID, isStarting)
			if err != nil {
				s.logger.WarnContext(ctx, "lineup audit failed", "run_id", runID, "lineup_id", lineupID, "error", err)
				return
			}
			record(found)
		})
		if submitErr != nil {
			wg.Done()
			s.logger.WarnContext(ctx, "audit task submit failed", "run_id", runID, "lineup_id", lineupID, "error", submitErr)
		}
	}
	wg.Wait()

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].LineupID != issues[j].LineupID {
			return issues[i].LineupID < issues[j].LineupID
		}
		return issues[i].Kind < issues[j].Kind
	})

	s.logger.InfoContext(ctx, "lineup audit finished",
		"run_id", runID,
		"lineup_count", len(headers),
		"issue_count", len(issues),
	)

	return AuditReport{RunID: runID, LineupCount: len(headers), Issues: issues}, nil
}

func (s *AuditService) auditLineup(ctx context.Context, lineupID int64, isStarting bool) ([]AuditIssue, error) {
	_, assignments, exists, err := s.lineupRepo.GetByID(ctx, lineupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	var issues []AuditIssue
	slotSeen := make(map[int]int, len(assignments))
	playerSeen := make(map[int64]int, len(assignments))
	for _, a := range assignments {
		if !roleslot.ValidSlot(a.SlotNo) {
			issues = append(issues, AuditIssue{
				LineupID: lineupID,
				Kind:     "slot_out_of_range",
				Detail:   fmt.Sprintf("slot %d", a.SlotNo),
			})
		}
		slotSeen[a.SlotNo]++
		playerSeen[a.PlayerID]++
	}
	for slotNo, count := range slotSeen {
		if count > 1 {
			issues = append(issues, AuditIssue{
				LineupID: lineupID,
				Kind:     "duplicate_slot",
				Detail:   fmt.Sprintf("slot %d assigned %d times", slotNo, count),
			})
		}
	}
	for playerID, count := range playerSeen {
		if count > 1 {
			issues = append(issues, AuditIssue{
				LineupID: lineupID,
				Kind:     "duplicate_player",
				Detail:   fmt.Sprintf("player %d assigned %d times", playerID, count),
			})
		}
	}
	if isStarting && len(assignments) != lineup.StartingSize {
		issues = append(issues, AuditIssue{
			LineupID: lineupID,
			Kind:     "starting_size",
			Detail:   fmt.Sprintf("starting lineup has %d assignments", len(assignments)),
		})
	}

	return issues, nil
}
