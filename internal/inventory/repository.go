package inventory

import (
	"fmt"

	"enstracker/internal/store"
	custom_error "enstracker/pkg/errors"
	"enstracker/pkg/models"

	"go.uber.org/zap"
)

const inventoryKey = "ensInventory"

// SeedAssets is the collection written on first start when no inventory
// exists yet.
var SeedAssets = []models.Asset{
	{Tag: "ENS-L-001", Type: "Laptop", Model: "Dell Latitude 7420", User: "System", Status: "Available"},
	{Tag: "ENS-M-102", Type: "Mobile", Model: "iPhone 13", User: "Sarah Connor", Status: "Assigned"},
}

// Repository owns the asset collection. Every mutation persists the full
// collection back to the store; insertion order is preserved.
type Repository struct {
	store store.Store
}

func NewRepository(s store.Store) *Repository {
	return &Repository{store: s}
}

func (r *Repository) All() ([]models.Asset, error) {
	var assets []models.Asset

	ok, err := store.ReadInto(r.store, inventoryKey, &assets)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Asset{}, nil
	}

	return assets, nil
}

func (r *Repository) FindByTag(tag string) (*models.Asset, error) {
	assets, err := r.All()
	if err != nil {
		return nil, err
	}

	for i := range assets {
		if assets[i].Tag == tag {
			asset := assets[i]
			return &asset, nil
		}
	}

	return nil, custom_error.NewNotFound("asset", tag)
}

// Upsert merges patch into the asset stored under tag, or appends a new asset
// built from the patch when the tag is unknown. The resulting asset is
// returned after the collection has been persisted.
func (r *Repository) Upsert(tag string, patch models.AssetPatch) (*models.Asset, error) {
	if tag == "" {
		return nil, custom_error.NewValidation("asset tag is required")
	}

	assets, err := r.All()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range assets {
		if assets[i].Tag == tag {
			idx = i
			break
		}
	}

	if idx >= 0 {
		patch.ApplyTo(&assets[idx])
	} else {
		asset := models.Asset{Tag: tag}
		patch.ApplyTo(&asset)
		assets = append(assets, asset)
		idx = len(assets) - 1
	}

	if err := r.store.Write(inventoryKey, assets); err != nil {
		return nil, fmt.Errorf("failed to persist inventory: %w", err)
	}

	result := assets[idx]
	return &result, nil
}

// Remove deletes the asset stored under tag.
func (r *Repository) Remove(tag string) error {
	assets, err := r.All()
	if err != nil {
		return err
	}

	idx := -1
	for i := range assets {
		if assets[i].Tag == tag {
			idx = i
			break
		}
	}
	if idx < 0 {
		return custom_error.NewNotFound("asset", tag)
	}

	assets = append(assets[:idx], assets[idx+1:]...)

	if err := r.store.Write(inventoryKey, assets); err != nil {
		return fmt.Errorf("failed to persist inventory: %w", err)
	}

	return nil
}

// Seed writes the given collection only when no inventory is stored yet.
func (r *Repository) Seed(assets []models.Asset) error {
	return store.SeedIfAbsent(r.store, inventoryKey, assets)
}

// Reset is the corruption recovery policy: log and overwrite the collection.
func (r *Repository) Reset(assets []models.Asset, logger *zap.Logger) error {
	return store.ResetCorrupt(r.store, inventoryKey, assets, logger)
}
