// Package entity contains the core business objects of the project.
package entity

// MonitoringMode represents how a pet's diet is tracked: by counting meals
// or by summing calories.
type MonitoringMode string

const (
	// MonitorByMeals counts one unit of progress per meal.
	MonitorByMeals MonitoringMode = "meals"
	// MonitorByCalories sums the calories of each meal's foods.
	MonitorByCalories MonitoringMode = "calories"
)

// String returns the string representation of the MonitoringMode.
func (m MonitoringMode) String() string {
	return string(m)
}

// IsValid checks if the MonitoringMode is a valid value.
func (m MonitoringMode) IsValid() bool {
	switch m {
	case MonitorByMeals, MonitorByCalories:
		return true
	default:
		return false
	}
}
