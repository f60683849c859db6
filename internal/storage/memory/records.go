package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"safezone/internal/domain"
	"safezone/pkg/e"
)

type CriticalZoneRepo struct {
	db *db
}

func (r *CriticalZoneRepo) CreateCriticalZone(ctx context.Context, cz *domain.CriticalZone) error {
	const op = "memory.CriticalZone.Create"

	if err := ctx.Err(); err != nil {
		return e.WrapError(ctx, op, err)
	}
	if !cz.Location.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if cz.ID == uuid.Nil {
		cz.ID = uuid.New()
	}
	if cz.CreatedAt.IsZero() {
		cz.CreatedAt = time.Now().UTC()
	}

	r.db.mu.Lock()
	r.db.critical = append(r.db.critical, *cz)
	r.db.mu.Unlock()
	return nil
}

func (r *CriticalZoneRepo) ListCriticalZones(ctx context.Context, limit int) ([]*domain.CriticalZone, error) {
	const op = "memory.CriticalZone.List"

	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	if limit <= 0 {
		limit = domain.DefaultCriticalLimit
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	// appended in creation order
	out := make([]*domain.CriticalZone, 0, min(limit, len(r.db.critical)))
	for i := len(r.db.critical) - 1; i >= 0 && len(out) < limit; i-- {
		cz := r.db.critical[i]
		out = append(out, &cz)
	}
	return out, nil
}

type FeatureDetailsRepo struct {
	db *db
}

func (r *FeatureDetailsRepo) Create(ctx context.Context, zoneID uuid.UUID, zoneType domain.ZoneType, f domain.Features) (*domain.FeatureDetails, error) {
	const op = "memory.FeatureDetails.Create"

	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.zones[zoneID]; !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if _, ok := r.db.features[zoneID]; ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUniqueViolation)
	}

	now := time.Now().UTC()
	fd := domain.FeatureDetails{ZoneID: zoneID, ZoneType: zoneType.OrDefault(), CreatedAt: now, UpdatedAt: now}
	fd.Apply(f)
	r.db.features[zoneID] = fd
	return &fd, nil
}

func (r *FeatureDetailsRepo) Update(ctx context.Context, zoneID uuid.UUID, zoneType domain.ZoneType, f domain.Features) (*domain.FeatureDetails, error) {
	const op = "memory.FeatureDetails.Update"

	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.zones[zoneID]; !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	now := time.Now().UTC()
	fd, ok := r.db.features[zoneID]
	if !ok {
		fd = domain.FeatureDetails{ZoneID: zoneID, CreatedAt: now}
	}
	fd.ZoneType = zoneType.OrDefault()
	fd.Apply(f)
	fd.UpdatedAt = now
	r.db.features[zoneID] = fd
	return &fd, nil
}

func (r *FeatureDetailsRepo) Get(ctx context.Context, zoneID uuid.UUID) (*domain.FeatureDetails, error) {
	const op = "memory.FeatureDetails.Get"

	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	fd, ok := r.db.features[zoneID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return &fd, nil
}

type ContactRepo struct {
	db *db
}

func (r *ContactRepo) FindContactsByUserID(ctx context.Context, userID string) ([]domain.Contact, error) {
	const op = "memory.Contact.FindByUserID"

	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]domain.Contact, 0, 8)
	for _, c := range r.db.contacts {
		if g, ok := r.db.groups[c.GroupID]; ok && g.UserID == userID {
			c.GroupName = g.Name
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].GroupName != out[j].GroupName {
			return out[i].GroupName < out[j].GroupName
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *ContactRepo) CreateGroup(ctx context.Context, g *domain.ContactGroup) error {
	const op = "memory.Contact.CreateGroup"

	if err := ctx.Err(); err != nil {
		return e.WrapError(ctx, op, err)
	}
	if g.UserID == "" || g.Name == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	r.db.mu.Lock()
	r.db.groups[g.ID] = *g
	r.db.mu.Unlock()
	return nil
}

func (r *ContactRepo) AddContact(ctx context.Context, c *domain.Contact) error {
	const op = "memory.Contact.AddContact"

	if err := ctx.Err(); err != nil {
		return e.WrapError(ctx, op, err)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	g, ok := r.db.groups[c.GroupID]
	if !ok {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.GroupName = g.Name
	r.db.contacts = append(r.db.contacts, *c)
	return nil
}
