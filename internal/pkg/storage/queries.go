package storage

import (
	"context"
	"fmt"

	"github.com/diwise/api-features/internal/app/features"
	"github.com/diwise/api-features/internal/pkg/auth"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
)

func (db Db) QueryFeatures(ctx context.Context, conditions ...features.ConditionFunc) (features.QueryResult, error) {
	log := logging.GetFromContext(ctx)

	where, args, limit, offset := newQueryFeaturesParams(ctx, conditions...)

	query := fmt.Sprintf("SELECT data, count(*) OVER () AS total_count FROM features %s", where)

	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		log.Error("could not execute query", "err", err.Error())
		return features.QueryResult{}, err
	}
	defer rows.Close()

	data := make([][]byte, 0)
	var totalCount int64

	for rows.Next() {
		var b []byte
		err = rows.Scan(&b, &totalCount)
		if err != nil {
			log.Error("could not scan row", "err", err.Error())
			return features.QueryResult{}, err
		}
		data = append(data, b)
	}

	if rows.Err() != nil {
		return features.QueryResult{}, rows.Err()
	}

	return features.QueryResult{
		Data:       data,
		Count:      len(data),
		Limit:      limit,
		Offset:     offset,
		TotalCount: totalCount,
	}, nil
}

func (db Db) GetCollections(ctx context.Context, tenants []string) ([]string, error) {
	log := logging.GetFromContext(ctx)

	query := `SELECT DISTINCT collection FROM features WHERE tenant=ANY(@tenants) ORDER BY collection ASC;`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{
		"tenants": tenants,
	})
	if err != nil {
		log.Error("could not execute query", "err", err.Error())
		return nil, err
	}
	defer rows.Close()

	collections := make([]string, 0)

	for rows.Next() {
		var collection string
		err = rows.Scan(&collection)
		if err != nil {
			log.Error("could not scan row", "err", err.Error())
			return nil, err
		}
		collections = append(collections, collection)
	}

	return collections, rows.Err()
}

func newConditions(ctx context.Context, conditions ...features.ConditionFunc) map[string]any {
	m := make(map[string]any)

	for _, f := range conditions {
		m = f(m)
	}

	if _, ok := m["tenants"]; !ok {
		if tenants := auth.GetAllowedTenantsFromContext(ctx); len(tenants) > 0 {
			m["tenants"] = tenants
		}
	}

	if _, ok := m["limit"]; !ok {
		m["limit"] = 100
	}

	if _, ok := m["offset"]; !ok {
		m["offset"] = 0
	}

	return m
}

func newQueryFeaturesParams(ctx context.Context, conditions ...features.ConditionFunc) (string, pgx.NamedArgs, int, int) {
	c := newConditions(ctx, conditions...)

	query := "WHERE 1=1"
	args := pgx.NamedArgs{}

	if collection, ok := c["collection"]; ok {
		query += " AND collection=@collection"
		args["collection"] = collection
	}

	if featureID, ok := c["feature_id"]; ok {
		query += " AND feature_id=@feature_id"
		args["feature_id"] = featureID
	}

	if tenants, ok := c["tenants"]; ok {
		query += " AND tenant=ANY(@tenants)"
		args["tenants"] = tenants
	}

	if geomType, ok := c["geom_type"]; ok {
		query += " AND geom_type=@geom_type"
		args["geom_type"] = geomType
	}

	if refDevice, ok := c["ref_device"]; ok {
		query += fmt.Sprintf(` AND data->'properties'->'ref_devices' @> '[{"device_id": "%s"}]'`, refDevice)
	}

	if bbox, ok := c["bbox"].([4]float64); ok {
		query += " AND location <@ box(point(@min_x,@min_y), point(@max_x,@max_y))"
		args["min_x"] = bbox[0]
		args["min_y"] = bbox[1]
		args["max_x"] = bbox[2]
		args["max_y"] = bbox[3]
	}

	query += " ORDER BY feature_id ASC"

	limit, _ := c["limit"].(int)
	offset, _ := c["offset"].(int)

	query += " OFFSET @offset"
	args["offset"] = offset

	query += " LIMIT @limit"
	args["limit"] = limit

	return query, args, limit, offset
}
