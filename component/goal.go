package component

// GoalComponent tags the single goal sensor
type GoalComponent struct{}
