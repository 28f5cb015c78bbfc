package ingest

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg/oj"

	"github.com/avelsner/crossrank/pkg/model"
)

// LoadLabels reads the external ground-truth outcome labels for training:
// a JSON array of {"competitorKey": ..., "season": ..., "value": ...}.
func LoadLabels(path string) ([]model.OutcomeLabel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing labels %s: %w", path, err)
	}
	rows, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("labels %s: expected an array, got %T", path, parsed)
	}
	labels := make([]model.OutcomeLabel, 0, len(rows))
	for i, rawRow := range rows {
		row, ok := rawRow.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("labels %s: row %d is not an object", path, i)
		}
		key, _ := row["competitorKey"].(string)
		season, seasonOk := asInt(row["season"])
		value, valueOk := asNumber(row["value"])
		if key == "" || !seasonOk || !valueOk {
			return nil, fmt.Errorf("labels %s: row %d is incomplete", path, i)
		}
		labels = append(labels, model.OutcomeLabel{
			CompetitorKey: key,
			Season:        season,
			Value:         value,
		})
	}
	return labels, nil
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

func asInt(v any) (int, bool) {
	n, ok := asNumber(v)
	if !ok || n != float64(int(n)) {
		return 0, false
	}
	return int(n), true
}
