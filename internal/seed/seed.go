// Package seed loads reference data (locations, checklist items, users) from YAML.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"marina-guard-backend/internal/database/models"
	"marina-guard-backend/internal/logger"
	"marina-guard-backend/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// File is the layout of a seed document
type File struct {
	Locations      []Location      `yaml:"locations"`
	ChecklistItems []ChecklistItem `yaml:"checklist_items"`
	Users          []User          `yaml:"users"`
}

// Location is a seeded location, matched by name
type Location struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Address     string `yaml:"address"`
	MaxCapacity *int   `yaml:"max_capacity"`
}

// ChecklistItem is a seeded checklist line. Location names a seeded or existing
// location; empty means the item applies everywhere.
type ChecklistItem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Location    string `yaml:"location"`
	SortOrder   int    `yaml:"sort_order"`
}

// User is a pre-provisioned account, matched by identity-provider subject
type User struct {
	ExternalID string      `yaml:"external_id"`
	Email      string      `yaml:"email"`
	Name       string      `yaml:"name"`
	Role       models.Role `yaml:"role"`
}

// Result counts what Apply changed
type Result struct {
	LocationsCreated int
	ItemsCreated     int
	UsersCreated     int
	UsersUpdated     int
}

// Parse decodes and checks a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	for i, l := range f.Locations {
		if strings.TrimSpace(l.Name) == "" {
			return fmt.Errorf("locations[%d]: name is required", i)
		}
		if l.MaxCapacity != nil && *l.MaxCapacity < 1 {
			return fmt.Errorf("locations[%d]: max_capacity must be positive", i)
		}
	}
	for i, item := range f.ChecklistItems {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("checklist_items[%d]: name is required", i)
		}
	}
	for i, u := range f.Users {
		if strings.TrimSpace(u.ExternalID) == "" {
			return fmt.Errorf("users[%d]: external_id is required", i)
		}
		if u.Role == "" {
			f.Users[i].Role = models.RoleGuard
		} else if !u.Role.IsValid() {
			return fmt.Errorf("users[%d]: unknown role %q", i, u.Role)
		}
	}
	return nil
}

// Seeder writes a seed document through the repositories
type Seeder struct {
	users      repository.UserRepositoryInterface
	locations  repository.LocationRepositoryInterface
	checklists repository.ChecklistRepositoryInterface
}

// NewSeeder creates a new seeder
func NewSeeder(users repository.UserRepositoryInterface, locations repository.LocationRepositoryInterface, checklists repository.ChecklistRepositoryInterface) *Seeder {
	return &Seeder{users: users, locations: locations, checklists: checklists}
}

// Apply creates whatever is missing. Existing locations and items are left alone;
// existing users only have their role brought in line with the file.
func (s *Seeder) Apply(ctx context.Context, f *File) (*Result, error) {
	res := &Result{}
	log := logger.WithContext(ctx)

	locationIDs := make(map[string]uuid.UUID, len(f.Locations))
	for _, l := range f.Locations {
		existing, err := s.locations.GetByName(ctx, l.Name)
		switch {
		case err == nil:
			locationIDs[l.Name] = existing.ID
			continue
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return res, fmt.Errorf("look up location %q: %w", l.Name, err)
		}

		location := &models.Location{
			Name:        l.Name,
			Description: l.Description,
			Address:     l.Address,
			MaxCapacity: l.MaxCapacity,
			IsActive:    true,
		}
		if err := s.locations.Create(ctx, location); err != nil {
			return res, fmt.Errorf("create location %q: %w", l.Name, err)
		}
		locationIDs[l.Name] = location.ID
		res.LocationsCreated++
		log.WithField("location", l.Name).Info("Seeded location")
	}

	for _, item := range f.ChecklistItems {
		var locationID *uuid.UUID
		if item.Location != "" {
			id, ok := locationIDs[item.Location]
			if !ok {
				existing, err := s.locations.GetByName(ctx, item.Location)
				if err != nil {
					return res, fmt.Errorf("checklist item %q: location %q: %w", item.Name, item.Location, err)
				}
				id = existing.ID
				locationIDs[item.Location] = id
			}
			locationID = &id
		}

		exists, err := s.itemExists(ctx, item.Name, locationID)
		if err != nil {
			return res, err
		}
		if exists {
			continue
		}

		if err := s.checklists.CreateItem(ctx, &models.SafetyChecklistItem{
			Name:        item.Name,
			Description: item.Description,
			LocationID:  locationID,
			SortOrder:   item.SortOrder,
			IsActive:    true,
		}); err != nil {
			return res, fmt.Errorf("create checklist item %q: %w", item.Name, err)
		}
		res.ItemsCreated++
	}

	for _, u := range f.Users {
		existing, err := s.users.GetByExternalID(ctx, u.ExternalID)
		if err == nil {
			if existing.Role != u.Role {
				existing.Role = u.Role
				if err := s.users.Update(ctx, existing); err != nil {
					return res, fmt.Errorf("update user %q: %w", u.ExternalID, err)
				}
				res.UsersUpdated++
			}
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return res, fmt.Errorf("look up user %q: %w", u.ExternalID, err)
		}

		if err := s.users.Create(ctx, &models.User{
			ExternalID: u.ExternalID,
			Email:      u.Email,
			Name:       u.Name,
			Role:       u.Role,
		}); err != nil {
			return res, fmt.Errorf("create user %q: %w", u.ExternalID, err)
		}
		res.UsersCreated++
		log.WithFields(map[string]interface{}{"external_id": u.ExternalID, "role": u.Role}).Info("Seeded user")
	}

	return res, nil
}

// itemExists matches on name within the same scope (one location, or global)
func (s *Seeder) itemExists(ctx context.Context, name string, locationID *uuid.UUID) (bool, error) {
	items, err := s.checklists.ListItems(ctx, locationID)
	if err != nil {
		return false, fmt.Errorf("list checklist items: %w", err)
	}
	for _, it := range items {
		if !strings.EqualFold(it.Name, name) {
			continue
		}
		if locationID == nil && it.LocationID == nil {
			return true, nil
		}
		if locationID != nil && it.LocationID != nil && *it.LocationID == *locationID {
			return true, nil
		}
	}
	return false, nil
}
