package mysql

const upsertProviderSQL = `
INSERT INTO providers
  (id, name, service_type, lat, lon, landmark, price_min, price_max, rating, description, contact_info, operating_hours)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name            = VALUES(name),
  service_type    = VALUES(service_type),
  lat             = VALUES(lat),
  lon             = VALUES(lon),
  landmark        = VALUES(landmark),
  price_min       = VALUES(price_min),
  price_max       = VALUES(price_max),
  rating          = VALUES(rating),
  description     = VALUES(description),
  contact_info    = VALUES(contact_info),
  operating_hours = VALUES(operating_hours),
  updated_at      = CURRENT_TIMESTAMP
`

// Bounding-box prefilter on the (service_type, lat, lon) index; the
// exact haversine cut happens in Go after the scan.
const findProvidersSQL = `
SELECT
  id,
  name,
  service_type,
  lat,
  lon,
  landmark,
  price_min,
  price_max,
  rating,
  description,
  contact_info,
  operating_hours
FROM providers
WHERE service_type = ?
  AND lat BETWEEN ? AND ?
  AND lon BETWEEN ? AND ?
LIMIT 100
`

const insertMissSQL = `
INSERT INTO search_misses (service_type, reason)
VALUES (?, ?)
`
