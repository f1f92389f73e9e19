package features

import (
	"strconv"
	"strings"
)

type ConditionFunc func(map[string]any) map[string]any

type QueryResult struct {
	Data       [][]byte
	Count      int
	Limit      int
	Offset     int
	TotalCount int64
}

func WithCollection(collectionID string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["collection"] = collectionID
		return m
	}
}

func WithFeatureID(featureID string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["feature_id"] = featureID
		return m
	}
}

func WithGeomType(geomType string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["geom_type"] = geomType
		return m
	}
}

func WithTenants(tenants []string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["tenants"] = tenants
		return m
	}
}

func WithRefDevice(refDevice string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["ref_device"] = refDevice
		return m
	}
}

func WithBoundingBox(minX, minY, maxX, maxY float64) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["bbox"] = [4]float64{minX, minY, maxX, maxY}
		return m
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["offset"] = offset
		return m
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["limit"] = limit
		return m
	}
}

func WithParams(query map[string][]string) []ConditionFunc {
	conditions := make([]ConditionFunc, 0)

	params := map[string][]string{}
	for k, v := range query {
		key := strings.ReplaceAll(strings.ToLower(k), "_", "")
		params[key] = v
	}

	if tenants, ok := params["tenant"]; ok {
		conditions = append(conditions, WithTenants(tenants))
	}

	if geomType, ok := params["geomtype"]; ok {
		conditions = append(conditions, WithGeomType(geomType[0]))
	}

	if refDevice, ok := params["refdevice"]; ok {
		conditions = append(conditions, WithRefDevice(refDevice[0]))
	}

	if bbox, ok := params["bbox"]; ok {
		if coords, ok := parseBoundingBox(bbox[0]); ok {
			conditions = append(conditions, WithBoundingBox(coords[0], coords[1], coords[2], coords[3]))
		}
	}

	if offset, ok := params["offset"]; ok {
		i, err := strconv.Atoi(offset[0])
		if err == nil {
			conditions = append(conditions, WithOffset(i))
		}
	}

	if limit, ok := params["limit"]; ok {
		i, err := strconv.Atoi(limit[0])
		if err == nil {
			conditions = append(conditions, WithLimit(i))
		}
	}

	return conditions
}

func parseBoundingBox(s string) ([4]float64, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return [4]float64{}, false
	}

	var coords [4]float64

	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [4]float64{}, false
		}
		coords[i] = f
	}

	return coords, true
}
