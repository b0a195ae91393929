// Package testutil provides shared fixtures and fakes for tests.
package testutil

import "github.com/alexanderramin/sprintplan/internal/domain"

// SprintFixture builds a small, fully wired planning snapshot:
//   - two backend devs, one frontend dev, one QA, one team lead
//   - an architect role nobody holds (zero-headcount path)
//   - three stories with one dependency chain
//
// With hours_per_point=10, story S1 (5 points) requires BE 20h, FE 15h,
// QA 13h (coverage factor 1.2 plus 1h meeting load), TL 5.5h.
func SprintFixture() *domain.SprintData {
	return &domain.SprintData{
		People: []domain.Person{
			{ID: "ana", Role: domain.RoleBackend, CapacityHours: 60},
			{ID: "ben", Role: domain.RoleBackend, CapacityHours: 60},
			{ID: "carla", Role: domain.RoleFrontend, CapacityHours: 50},
			{ID: "dan", Role: domain.RoleQA, CapacityHours: 40},
			{ID: "eva", Role: domain.RoleTeamLead, CapacityHours: 20},
		},
		Stories: []domain.Story{
			{ID: "S1", Points: 5, Value: 100},
			{ID: "S2", Points: 3, Value: 60, DependsOn: "S1"},
			{ID: "S3", Points: 8, Value: 90},
		},
		Roles: []domain.Role{
			{ID: domain.RoleBackend, ShareOfHours: 0.4, BugHoursPerBug: 2},
			{ID: domain.RoleFrontend, ShareOfHours: 0.3, BugHoursPerBug: 2},
			{ID: domain.RoleQA, ShareOfHours: 0.2, MeetingLoadPerStoryHours: 1, BugHoursPerBug: 3},
			{ID: domain.RoleTeamLead, ShareOfHours: 0.1, MeetingLoadPerStoryHours: 0.5},
			{ID: domain.RoleArchitect},
		},
		Config: domain.PlanConfig{
			HoursPerPoint:          10,
			BugsPerSprint:          4,
			MaxPointsPerDev:        13,
			LambdaPeoplePenalty:    10,
			RequireReleaseRoles:    map[domain.RoleID]bool{domain.RoleBackend: true, domain.RoleFrontend: true},
			MinHoursToCountRelease: 4,
			QACoverageFactor:       1.2,
			WIPFactorQACapacity:    0.8,
			ForbidPoints:           map[int]bool{},
		},
	}
}
