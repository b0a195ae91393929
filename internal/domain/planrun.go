package domain

import "time"

// PlanRun is the persisted record of one planning run: the solve outcome
// and headline counts, kept so past runs can be listed and compared.
type PlanRun struct {
	ID              string
	CreatedAt       time.Time
	Status          string
	Objective       float64
	DeliveredValue  float64
	ActivePeople    int
	StoriesSelected int
	StoriesEligible int
	DataDir         string
	OutDir          string
}
