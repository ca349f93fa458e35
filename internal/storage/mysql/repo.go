package mysql

import (
	"context"
	"database/sql"
	"math"

	"huduma_finder/internal/adapters/observability"
	"huduma_finder/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Repo is the curated provider directory. It backs searches when the
// live OSM source fails or comes back empty, and records those misses
// so the directory can be grown where coverage is thin.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertProvider(ctx context.Context, p domain.Provider) error {
	_, err := r.db.ExecContext(ctx, upsertProviderSQL,
		p.ID,
		p.Name,
		p.ServiceType,
		p.Location.Latitude,
		p.Location.Longitude,
		valStr(p.Location.Landmark),
		p.PriceRange.Min,
		p.PriceRange.Max,
		p.Rating,
		valStr(p.Description),
		valStr(p.ContactInfo),
		valStr(p.OperatingHours),
	)
	return err
}

func (r *Repo) FindProviders(ctx context.Context, serviceType string, origin domain.Location, radiusKm float64) ([]domain.Provider, error) {
	if radiusKm <= 0 {
		radiusKm = 10
	}
	dLat := radiusKm / 110.574
	dLon := radiusKm / (111.320 * math.Cos(origin.Latitude*math.Pi/180))

	rows, err := r.db.QueryContext(ctx, findProvidersSQL,
		serviceType,
		origin.Latitude-dLat, origin.Latitude+dLat,
		origin.Longitude-dLon, origin.Longitude+dLon,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Provider
	for rows.Next() {
		var p domain.Provider
		var landmark, desc, contact, hours sql.NullString
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.ServiceType,
			&p.Location.Latitude,
			&p.Location.Longitude,
			&landmark,
			&p.PriceRange.Min,
			&p.PriceRange.Max,
			&p.Rating,
			&desc,
			&contact,
			&hours,
		); err != nil {
			return nil, err
		}
		p.Location.Name = p.Name
		p.Location.Landmark = landmark.String
		p.Description = desc.String
		p.ContactInfo = contact.String
		p.OperatingHours = hours.String

		// The box corners reach past the radius; cut them here.
		d := domain.DistanceKm(origin, p.Location)
		if d > radiusKm {
			continue
		}
		p.Accessibility = domain.AccessibilityFor(d)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) LogMiss(ctx context.Context, serviceType, reason string) error {
	observability.ObserveSearchMiss(serviceType)
	_, err := r.db.ExecContext(ctx, insertMissSQL, serviceType, reason)
	return err
}
