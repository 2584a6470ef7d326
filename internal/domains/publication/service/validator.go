package service

import (
	"fmt"

	"publications-backend/internal/domains/publication/model"
)

// validateCreate runs the structural checks on a create request.
// Purely structural: the author gateway is never consulted here.
func validateCreate(req *model.CreatePublicationRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", model.ErrValidation, err)
	}
	return nil
}

// validateStatusTransition delegates to the lifecycle policy table.
// The violation message names both states.
func validateStatusTransition(current, target model.Status) error {
	if !current.CanTransitionTo(target) {
		return fmt.Errorf("%w: cannot transition from %s to %s",
			model.ErrInvalidStatusTransition, current, target)
	}
	return nil
}
