package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/role-slots", handler.ListRoleSlots)
	mux.HandleFunc("POST /v1/formations", handler.CreateFormation)
	mux.HandleFunc("GET /v1/formations", handler.ListFormations)
	mux.HandleFunc("GET /v1/formations/{formationID}", handler.GetFormation)
	mux.HandleFunc("DELETE /v1/formations/{formationID}", handler.DeleteFormation)
}

func registerLineupRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/lineups", handler.CreateLineup)
	mux.HandleFunc("GET /v1/lineups", handler.ListLineups)
	mux.HandleFunc("GET /v1/lineups/{lineupID}", handler.GetLineup)
	mux.HandleFunc("GET /v1/lineups/{lineupID}/roles", handler.ResolveLineupRoles)
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayerDetail)
	mux.HandleFunc("GET /v1/players/{playerID}/medical-reports", handler.ListPlayerMedicalReports)
	mux.HandleFunc("GET /v1/players/{playerID}/match-stats", handler.ListPlayerMatchStats)
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/matches", handler.CreateMatch)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/upcoming", handler.ListUpcomingMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("PATCH /v1/matches/{matchID}/result", handler.RecordMatchResult)
}

func registerStaffRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/staff", handler.CreateStaff)
	mux.HandleFunc("GET /v1/staff", handler.ListStaff)
	mux.HandleFunc("GET /v1/staff/{staffID}", handler.GetStaff)
	mux.HandleFunc("POST /v1/coaches", handler.AttachCoach)
	mux.HandleFunc("GET /v1/coaches", handler.ListCoaches)
	mux.HandleFunc("POST /v1/scouts", handler.AttachScout)
	mux.HandleFunc("GET /v1/scouts", handler.ListScouts)
	mux.HandleFunc("POST /v1/medical-staff", handler.AttachMedic)
	mux.HandleFunc("GET /v1/medical-staff", handler.ListMedics)
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/medical-reports", handler.CreateMedicalReport)
	mux.HandleFunc("GET /v1/medical-reports", handler.ListMedicalReports)
	mux.HandleFunc("POST /v1/medical-reports/{reportID}/conditions", handler.AddMedicalCondition)
	mux.HandleFunc("POST /v1/scouting-reports", handler.CreateScoutingReport)
	mux.HandleFunc("GET /v1/scouting-reports", handler.ListScoutingReports)
	mux.HandleFunc("POST /v1/player-match-stats", handler.RecordPlayerMatchStats)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/audit/lineups", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunLineupAudit)))
}
