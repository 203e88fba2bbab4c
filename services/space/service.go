package space

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	spaceRepo "reservas/database/repository/space"
	"reservas/models"
)

// SpaceService exposes space listings and creation.
type SpaceService interface {
	GetAll(ctx context.Context) ([]models.Space, error)
	GetByID(ctx context.Context, spaceID string) (*models.Space, error)
	GetByType(ctx context.Context, spaceType models.SpaceType) ([]models.Space, error)
	GroupedByFloor(ctx context.Context) ([]models.FloorGroup, error)
	Create(ctx context.Context, name string, spaceType models.SpaceType, capacity int, description string, floor models.Floor) (*models.Space, error)
}

// DefaultSpaceService is the production implementation.
type DefaultSpaceService struct {
	Repo   spaceRepo.SpaceRepository
	Logger *zap.Logger
}

// ResolveFloor derives a space's floor. The stored value wins; otherwise the
// name-prefix convention applies (A-0* ground, A-1* first, A-2* second;
// auditoriums sit on the ground floor). Pure and idempotent: resolving an
// already-resolved space returns the same floor.
func ResolveFloor(sp models.Space) models.Floor {
	if sp.Floor != "" {
		return sp.Floor
	}
	name := strings.ToUpper(sp.Name)
	switch {
	case strings.HasPrefix(name, "A-0"):
		return models.FloorGround
	case strings.HasPrefix(name, "A-1"):
		return models.FloorFirst
	case strings.HasPrefix(name, "A-2"):
		return models.FloorSecond
	case sp.Type == models.SpaceAuditorio:
		return models.FloorGround
	}
	return models.FloorUnknown
}

func (s *DefaultSpaceService) GetAll(ctx context.Context) ([]models.Space, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultSpaceService) GetByID(ctx context.Context, spaceID string) (*models.Space, error) {
	return s.Repo.GetByID(ctx, spaceID)
}

func (s *DefaultSpaceService) GetByType(ctx context.Context, spaceType models.SpaceType) ([]models.Space, error) {
	return s.Repo.GetByType(ctx, spaceType)
}

// GroupedByFloor returns all spaces bucketed by resolved floor, in the fixed
// display order, each group sorted by name. Empty groups are omitted.
func (s *DefaultSpaceService) GroupedByFloor(ctx context.Context) ([]models.FloorGroup, error) {
	spaces, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByFloor(spaces), nil
}

// GroupByFloor buckets an in-memory space list; shared with the chatbot's
// free-space listing.
func GroupByFloor(spaces []models.Space) []models.FloorGroup {
	buckets := make(map[models.Floor][]models.Space, len(models.FloorOrder))
	for _, sp := range spaces {
		floor := ResolveFloor(sp)
		buckets[floor] = append(buckets[floor], sp)
	}

	var groups []models.FloorGroup
	for _, floor := range models.FloorOrder {
		group := buckets[floor]
		if len(group) == 0 {
			continue
		}
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		groups = append(groups, models.FloorGroup{
			Key:    floor,
			Label:  models.FloorLabels[floor],
			Spaces: group,
		})
	}
	return groups
}

func (s *DefaultSpaceService) Create(ctx context.Context, name string, spaceType models.SpaceType, capacity int, description string, floor models.Floor) (*models.Space, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("space name is required")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive")
	}
	switch spaceType {
	case models.SpaceAula, models.SpaceLaboratorio, models.SpaceAuditorio:
	default:
		return nil, fmt.Errorf("unknown space type %q", spaceType)
	}

	sp := &models.Space{
		ID:          uuid.NewString(),
		Name:        name,
		Type:        spaceType,
		Capacity:    capacity,
		Floor:       floor,
		Description: description,
	}
	if sp.Floor == "" {
		sp.Floor = ResolveFloor(*sp)
	}
	if err := s.Repo.Create(ctx, sp); err != nil {
		return nil, err
	}
	s.Logger.Info("space created", zap.String("id", sp.ID), zap.String("name", sp.Name))
	return sp, nil
}
