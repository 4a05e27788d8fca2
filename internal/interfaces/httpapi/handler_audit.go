package httpapi

import (
	"net/http"
)

type auditIssueDTO struct {
	LineupID int64  `json:"lineupId"`
	Kind     string `json:"kind"`
	Detail   string `json:"detail"`
}

type auditReportDTO struct {
	RunID       string          `json:"runId"`
	LineupCount int             `json:"lineupCount"`
	IssueCount  int             `json:"issueCount"`
	Issues      []auditIssueDTO `json:"issues"`
}

func (h *Handler) RunLineupAudit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunLineupAudit")
	defer span.End()

	report, err := h.auditService.Audit(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "lineup audit failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	issues := make([]auditIssueDTO, 0, len(report.Issues))
	for _, issue := range report.Issues {
		issues = append(issues, auditIssueDTO{
			LineupID: issue.LineupID,
			Kind:     issue.Kind,
			Detail:   issue.Detail,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, auditReportDTO{
		RunID:       report.RunID,
		LineupCount: report.LineupCount,
		IssueCount:  len(issues),
		Issues:      issues,
	})
}
