// Package issuance implements the guided issuance workflow: assign an asset
// to a recipient and record the event.
package issuance

import (
	"fmt"

	"enstracker/internal/activity"
	"enstracker/internal/inventory"
	custom_error "enstracker/pkg/errors"
	"enstracker/pkg/metadata"
	"enstracker/pkg/models"
)

type Service struct {
	inventory *inventory.Repository
	activity  *activity.Log
}

func NewService(inv *inventory.Repository, log *activity.Log) *Service {
	return &Service{inventory: inv, activity: log}
}

// Issue assigns the tagged asset to recipient and appends an "Issuance"
// activity entry attributed to actor. An unknown tag is created on the fly,
// matching the upsert semantics of the inventory.
func (s *Service) Issue(tag, recipient, actor string) (*models.Asset, error) {
	if tag == "" {
		return nil, custom_error.NewValidation("asset tag is required")
	}
	if recipient == "" {
		return nil, custom_error.NewValidation("recipient name is required")
	}

	status := metadata.StatusAssigned.String()
	asset, err := s.inventory.Upsert(tag, models.AssetPatch{
		User:   &recipient,
		Status: &status,
	})
	if err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Issued %s to %s", tag, recipient)
	if _, err := s.activity.Append("Issuance", details, actor); err != nil {
		return nil, fmt.Errorf("asset issued but activity entry failed: %w", err)
	}

	return asset, nil
}
