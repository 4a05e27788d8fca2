package memory

import (
	"time"

	"github.com/clubops/clubops/internal/domain/formation"
	"github.com/clubops/clubops/internal/domain/match"
	"github.com/clubops/clubops/internal/domain/player"
	"github.com/clubops/clubops/internal/domain/roleslot"
	"github.com/clubops/clubops/internal/domain/team"
)

const (
	FormationID433  = int64(1)
	FormationID4231 = int64(2)
	FormationID352  = int64(3)
	FormationID442  = int64(4)
	FormationID343  = int64(5)
	FormationID532  = int64(6)
)

func SeedRoleSlots() []roleslot.RoleSlot {
	return roleslot.DefaultCatalog()
}

func SeedFormations() []formation.Formation {
	return []formation.Formation{
		{ID: FormationID433, Code: "4-3-3", DisplayName: "4-3-3 Standard"},
		{ID: FormationID4231, Code: "4-2-3-1", DisplayName: "4-2-3-1 Double Pivot"},
		{ID: FormationID352, Code: "3-5-2", DisplayName: "3-5-2 Wing Backs"},
		{ID: FormationID442, Code: "4-4-2", DisplayName: "4-4-2 Flat"},
		{ID: FormationID343, Code: "3-4-3", DisplayName: "3-4-3 Attacking"},
		{ID: FormationID532, Code: "5-3-2", DisplayName: "5-3-2 Low Block"},
	}
}

func SeedFormationOverrides() []formation.RoleOverride {
	return []formation.RoleOverride{
		{FormationID: FormationID4231, SlotNo: 6, Label: "Holding Midfielder"},
		{FormationID: FormationID4231, SlotNo: 10, Label: "Number Ten"},
		{FormationID: FormationID352, SlotNo: 2, Label: "Right Wing Back"},
		{FormationID: FormationID352, SlotNo: 3, Label: "Left Wing Back"},
		{FormationID: FormationID532, SlotNo: 6, Label: "Sweeper"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Northbridge FC", League: "National Premier", Stadium: "Northbridge Arena"},
		{ID: 2, Name: "Eastvale United", League: "National Premier", Stadium: "Eastvale Park"},
	}
}

func SeedPlayers() []player.Player {
	players := []player.Player{
		{FirstName: "Jonas", LastName: "Keller", Positions: "GK"},
		{FirstName: "Ryo", LastName: "Tanaka", Positions: "RB"},
		{FirstName: "Pablo", LastName: "Iglesias", Positions: "LB"},
		{FirstName: "Marcus", LastName: "Boateng", Positions: "CB"},
		{FirstName: "Viktor", LastName: "Lundqvist", Positions: "CB"},
		{FirstName: "Sofiane", LastName: "Meziane", Positions: "CDM,CM"},
		{FirstName: "Declan", LastName: "Murphy", Positions: "RW"},
		{FirstName: "Mateo", LastName: "Ruiz", Positions: "CM,CAM"},
		{FirstName: "Emre", LastName: "Aydin", Positions: "ST"},
		{FirstName: "Luca", LastName: "Moretti", Positions: "CAM"},
		{FirstName: "Kwame", LastName: "Osei", Positions: "LW"},
		{FirstName: "Tom", LastName: "Vandenberg", Positions: "GK"},
		{FirstName: "Ibrahim", LastName: "Diallo", Positions: "ST,LW", IsInjured: true},
	}
	for i := range players {
		players[i].ID = int64(101 + i)
		players[i].Salary = 42000
		players[i].IsActive = true
	}
	return players
}

func SeedMatches() []match.Match {
	kickoff := time.Date(2026, 9, 12, 19, 45, 0, 0, time.UTC)
	return []match.Match{
		{
			ID:        1,
			Name:      "League Round 4",
			Venue:     "Northbridge Arena",
			Opponent:  "Eastvale United",
			MatchDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			KickoffAt: &kickoff,
		},
		{
			ID:        2,
			Name:      "Cup First Round",
			Venue:     "Eastvale Park",
			Opponent:  "Eastvale United",
			MatchDate: time.Date(2026, 9, 26, 0, 0, 0, 0, time.UTC),
		},
	}
}
