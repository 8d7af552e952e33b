package diet

import (
	"petmanager/internal/domain/entity"
	domainerrors "petmanager/internal/domain/errors"
)

// ValidatePayload checks a meal payload against the monitoring mode of the
// day it belongs to. A by-meals day accepts only a description; a
// by-calories day accepts only a foods list. On update the relevant field
// may be omitted entirely, but a provided field still has to fit the mode.
func ValidatePayload(mode entity.MonitoringMode, op Operation, description string, foods []entity.MealFood, foodsProvided bool) error {
	fields := map[string]string{}

	switch mode {
	case entity.MonitorByMeals:
		if foodsProvided && len(foods) > 0 {
			fields["foods"] = "Foods cannot be provided when the diet is monitored by meals."
		}
		if op == OperationCreate && description == "" {
			fields["description"] = "Description is a required field."
		}
	case entity.MonitorByCalories:
		if description != "" {
			fields["description"] = "Description cannot be provided when the diet is monitored by calories."
		}
		if op == OperationCreate && len(foods) == 0 {
			fields["foods"] = "Foods is a required field."
		}
		if op == OperationUpdate && foodsProvided && len(foods) == 0 {
			fields["foods"] = "Foods cannot be empty."
		}
	}

	for _, f := range foods {
		if f.Quantity <= 0 {
			fields["foods"] = "Each food must have a positive quantity."
			break
		}
	}

	if len(fields) > 0 {
		return domainerrors.NewValidation(fields)
	}
	return nil
}
