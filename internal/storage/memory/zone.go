package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"safezone/internal/domain"
	"safezone/pkg/e"
	"safezone/pkg/geo"
)

type ZoneRepo struct {
	db *db
}

func (r *ZoneRepo) Create(ctx context.Context, zone *domain.Zone) error {
	const op = "memory.Zone.Create"

	if err := ctx.Err(); err != nil {
		return e.WrapError(ctx, op, err)
	}
	if zone == nil || zone.UserID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if !zone.Location.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	now := time.Now().UTC()
	if zone.CreatedAt.IsZero() {
		zone.CreatedAt = now
	}
	zone.UpdatedAt = now
	zone.Type = zone.Type.OrDefault()

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.zones[zone.ID]; ok {
		return fmt.Errorf("%s: %w", op, e.ErrUniqueViolation)
	}
	r.db.zones[zone.ID] = *zone
	return nil
}

func (r *ZoneRepo) Update(ctx context.Context, zone *domain.Zone) error {
	const op = "memory.Zone.Update"

	if err := ctx.Err(); err != nil {
		return e.WrapError(ctx, op, err)
	}
	if !zone.Location.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	cur, ok := r.db.zones[zone.ID]
	if !ok {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	zone.Type = zone.Type.OrDefault()
	zone.UserID = cur.UserID
	zone.CreatedAt = cur.CreatedAt
	zone.UpdatedAt = time.Now().UTC()
	r.db.zones[zone.ID] = *zone
	return nil
}

func (r *ZoneRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "memory.Zone.Delete"

	if err := ctx.Err(); err != nil {
		return e.WrapError(ctx, op, err)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.zones[id]; !ok {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	delete(r.db.zones, id)
	delete(r.db.features, id)
	return nil
}

func (r *ZoneRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	const op = "memory.Zone.GetByID"

	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	z, ok := r.db.zones[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return &z, nil
}

func (r *ZoneRepo) GetByUserID(ctx context.Context, userID string) ([]*domain.Zone, error) {
	return r.filter(ctx, "memory.Zone.GetByUserID", func(z *domain.Zone) bool { return z.UserID == userID })
}

func (r *ZoneRepo) GetByType(ctx context.Context, zoneType domain.ZoneType) ([]*domain.Zone, error) {
	return r.filter(ctx, "memory.Zone.GetByType", func(z *domain.Zone) bool { return z.Type == zoneType })
}

// filter returns copies of the matching zones, newest first.
func (r *ZoneRepo) filter(ctx context.Context, op string, keep func(*domain.Zone) bool) ([]*domain.Zone, error) {
	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]*domain.Zone, 0, len(r.db.zones))
	for _, z := range r.db.zones {
		z := z
		if keep(&z) {
			out = append(out, &z)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(zones []*domain.Zone) {
	sort.SliceStable(zones, func(i, j int) bool {
		if zones[i].CreatedAt.Equal(zones[j].CreatedAt) {
			return zones[i].ID.String() < zones[j].ID.String()
		}
		return zones[i].CreatedAt.After(zones[j].CreatedAt)
	})
}

func (r *ZoneRepo) GetAll(ctx context.Context, q domain.ZoneQuery) ([]*domain.Zone, error) {
	const op = "memory.Zone.GetAll"

	matchType := func(z *domain.Zone) bool { return q.Type == nil || z.Type == *q.Type }

	if q.Point == nil {
		return r.filter(ctx, op, matchType)
	}
	if !q.Point.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	radius := q.RadiusMeters
	if radius <= 0 {
		radius = domain.DefaultRadiusMeters
	}

	candidates, err := r.filter(ctx, op, matchType)
	if err != nil {
		return nil, err
	}

	// candidates are newest first, so ties on distance keep the newest zone
	best := make(map[string]*domain.NearbyZone)
	for _, z := range candidates {
		d := geo.DistanceMeters(*q.Point, z.Location)
		if d > radius {
			continue
		}
		if cur, ok := best[z.UserID]; !ok || d < cur.DistanceMeters {
			best[z.UserID] = &domain.NearbyZone{Zone: *z, DistanceMeters: d}
		}
	}

	ranked := make([]*domain.NearbyZone, 0, len(best))
	for _, nz := range best {
		ranked = append(ranked, nz)
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].DistanceMeters < ranked[j].DistanceMeters })

	out := make([]*domain.Zone, len(ranked))
	for i, nz := range ranked {
		z := nz.Zone
		out[i] = &z
	}
	return out, nil
}

func (r *ZoneRepo) GetByBoundingBox(ctx context.Context, box geo.BoundingBox, limit int) ([]*domain.Zone, error) {
	const op = "memory.Zone.GetByBoundingBox"

	if err := box.Validate(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	if limit <= 0 {
		limit = domain.DefaultBoundingLimit
	}
	if limit > domain.MaxBoundingLimit {
		limit = domain.MaxBoundingLimit
	}

	zones, err := r.filter(ctx, op, func(z *domain.Zone) bool { return box.Contains(z.Location) })
	if err != nil {
		return nil, err
	}
	if len(zones) > limit {
		zones = zones[:limit]
	}
	return zones, nil
}

func (r *ZoneRepo) within(ctx context.Context, op string, center geo.Point, radius float64, keep func(*domain.Zone) bool) ([]*domain.NearbyZone, error) {
	if !center.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if radius <= 0 {
		radius = domain.DefaultRadiusMeters
	}

	zones, err := r.filter(ctx, op, keep)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.NearbyZone, 0, len(zones))
	for _, z := range zones {
		if d := geo.DistanceMeters(center, z.Location); d <= radius {
			out = append(out, &domain.NearbyZone{Zone: *z, DistanceMeters: d})
		}
	}
	return out, nil
}

func (r *ZoneRepo) GetNearby(ctx context.Context, center geo.Point, radiusMeters float64) ([]*domain.NearbyZone, error) {
	const op = "memory.Zone.GetNearby"

	found, err := r.within(ctx, op, center, radiusMeters, func(z *domain.Zone) bool { return z.Type == domain.ZoneDanger })
	if err != nil {
		return nil, err
	}

	seen := make(map[geo.Point]struct{}, len(found))
	out := make([]*domain.NearbyZone, 0, len(found))
	for _, nz := range found {
		if _, dup := seen[nz.Location]; dup {
			continue
		}
		seen[nz.Location] = struct{}{}
		out = append(out, nz)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceMeters < out[j].DistanceMeters })
	return out, nil
}

func (r *ZoneRepo) GetCenter(ctx context.Context, center geo.Point, zoneType domain.ZoneType, radiusMeters float64) (*geo.Point, error) {
	const op = "memory.Zone.GetCenter"

	found, err := r.within(ctx, op, center, radiusMeters, func(z *domain.Zone) bool { return z.Type == zoneType })
	if err != nil {
		return nil, err
	}

	points := make([]geo.Point, len(found))
	for i, nz := range found {
		points[i] = nz.Location
	}
	c, ok := geo.Centroid(points)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ZoneRepo) UpdateCoordinates(ctx context.Context, id uuid.UUID, p geo.Point) (*domain.Zone, error) {
	const op = "memory.Zone.UpdateCoordinates"

	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	if !p.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	z, ok := r.db.zones[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	z.Location = p
	z.UpdatedAt = time.Now().UTC()
	r.db.zones[id] = z
	return &z, nil
}

func (r *ZoneRepo) StatsNearby(ctx context.Context, center geo.Point, radiusMeters float64) (*domain.ZoneStats, error) {
	const op = "memory.Zone.StatsNearby"

	found, err := r.within(ctx, op, center, radiusMeters, func(*domain.Zone) bool { return true })
	if err != nil {
		return nil, err
	}

	st := &domain.ZoneStats{}
	if len(found) == 0 {
		return st, nil
	}
	var sum float64
	st.MinDistance = found[0].DistanceMeters
	for _, nz := range found {
		sum += nz.DistanceMeters
		if nz.DistanceMeters < st.MinDistance {
			st.MinDistance = nz.DistanceMeters
		}
		if nz.DistanceMeters > st.MaxDistance {
			st.MaxDistance = nz.DistanceMeters
		}
	}
	st.TotalZones = int64(len(found))
	st.AvgDistance = sum / float64(len(found))
	return st, nil
}

func (r *ZoneRepo) GetNearbyFiltered(ctx context.Context, f domain.NearbyFilter) ([]*domain.NearbyZone, error) {
	const op = "memory.Zone.GetNearbyFiltered"

	limit := f.Limit
	if limit <= 0 {
		limit = domain.DefaultFilterLimit
	}

	found, err := r.within(ctx, op, f.Center, f.RadiusMeters, func(z *domain.Zone) bool {
		if f.UserID != "" && z.UserID != f.UserID {
			return false
		}
		if f.StartDate != "" && z.Date < f.StartDate {
			return false
		}
		if f.EndDate != "" && z.Date > f.EndDate {
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].DistanceMeters < found[j].DistanceMeters })
	if len(found) > limit {
		found = found[:limit]
	}
	return found, nil
}

func (r *ZoneRepo) Counts(ctx context.Context, recentSince time.Time) (*domain.ZoneCounts, error) {
	const op = "memory.Zone.Counts"

	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := &domain.ZoneCounts{ByUser: make(map[string]int64)}
	for _, z := range r.db.zones {
		counts.Total++
		counts.ByUser[z.UserID]++
		if z.CreatedAt.After(recentSince) {
			counts.RecentZones++
		}
	}
	return counts, nil
}
