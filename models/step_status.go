package models

type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusScheduled StepStatus = "scheduled"
	StepStatusUpcoming  StepStatus = "upcoming"
	StepStatusCompleted StepStatus = "completed"
)

var StepStatusOrder = []StepStatus{StepStatusPending, StepStatusScheduled, StepStatusUpcoming, StepStatusCompleted}
