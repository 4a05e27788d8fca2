package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/clubops/clubops/internal/domain/medical"
)

type MedicalRepository struct {
	mu         sync.RWMutex
	nextID     int64
	nextCondID int64
	reports    map[int64]medical.Report
	conditions map[int64][]medical.Condition
}

func NewMedicalRepository() *MedicalRepository {
	return &MedicalRepository{
		nextID:     1,
		nextCondID: 1,
		reports:    make(map[int64]medical.Report),
		conditions: make(map[int64][]medical.Condition),
	}
}

func (r *MedicalRepository) CreateReport(_ context.Context, report medical.Report) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report.ID = r.nextID
	r.nextID++
	r.reports[report.ID] = report

	return report.ID, nil
}

func (r *MedicalRepository) AddCondition(_ context.Context, c medical.Condition) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reports[c.ReportID]; !ok {
		return 0, fmt.Errorf("medical report %d does not exist", c.ReportID)
	}

	c.ID = r.nextCondID
	r.nextCondID++
	r.conditions[c.ReportID] = append(r.conditions[c.ReportID], c)

	return c.ID, nil
}

func (r *MedicalRepository) GetReport(_ context.Context, reportID int64) (medical.Report, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[reportID]
	if !ok {
		return medical.Report{}, false, nil
	}

	return report, true, nil
}

func (r *MedicalRepository) ListByPlayer(_ context.Context, playerID int64) ([]medical.ReportDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medical.ReportDetail, 0)
	for _, report := range r.reports {
		if report.PlayerID == playerID {
			out = append(out, r.detailLocked(report))
		}
	}
	sortReports(out)

	return out, nil
}

func (r *MedicalRepository) ListAll(_ context.Context) ([]medical.ReportDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medical.ReportDetail, 0, len(r.reports))
	for _, report := range r.reports {
		out = append(out, r.detailLocked(report))
	}
	sortReports(out)

	return out, nil
}

func (r *MedicalRepository) detailLocked(report medical.Report) medical.ReportDetail {
	return medical.ReportDetail{
		Report:     report,
		Conditions: append([]medical.Condition(nil), r.conditions[report.ID]...),
	}
}

func sortReports(reports []medical.ReportDetail) {
	sort.Slice(reports, func(i, j int) bool { return reports[i].ID < reports[j].ID })
}
