// Package ingest reads the raw season result files produced by the upstream
// acquisition stage. Two shapes exist, one per era:
//
//	{"Driver Name": {"total_time": 5400.0}}                  whole-race era
//	{"Driver Name": {"1": {"time": 90.0}, "2": {...}, ...}}  per-lap era
//
// Entries that fit neither shape are skipped and counted; ingestion never
// aborts on partial upstream data.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/oj"

	"github.com/avelsner/crossrank/log"
	"github.com/avelsner/crossrank/pkg/model"
)

// ParseEventRecords parses one raw result document. The returned count is
// the number of malformed entries that were dropped.
func ParseEventRecords(data []byte) (model.RawEventRecords, int, error) {
	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, 0, fmt.Errorf("parsing raw results: %w", err)
	}
	doc, ok := parsed.(map[string]any)
	if !ok {
		return nil, 0, fmt.Errorf("raw results: expected an object, got %T", parsed)
	}

	records := make(model.RawEventRecords, len(doc))
	malformed := 0
	for name, rawEntry := range doc {
		entry, ok := rawEntry.(map[string]any)
		if !ok {
			malformed++
			continue
		}
		record, ok := parseEntry(entry)
		if !ok {
			malformed++
			continue
		}
		records[name] = record
	}
	return records, malformed, nil
}

func parseEntry(entry map[string]any) (model.RawResult, bool) {
	for _, totalKey := range []string{"total_time", "total_time_raw"} {
		if raw, present := entry[totalKey]; present {
			total, ok := asSeconds(raw)
			if !ok || total < 0 {
				return model.RawResult{}, false
			}
			return model.RawResult{TotalTime: total, HasTotal: true}, true
		}
	}

	laps := make(map[int]float64, len(entry))
	for key, rawLap := range entry {
		lap, err := strconv.Atoi(key)
		if err != nil || lap <= 0 {
			return model.RawResult{}, false
		}
		lapEntry, ok := rawLap.(map[string]any)
		if !ok {
			return model.RawResult{}, false
		}
		t, ok := asSeconds(lapEntry["time"])
		if !ok || t < 0 {
			return model.RawResult{}, false
		}
		laps[lap] = t
	}
	if len(laps) == 0 {
		return model.RawResult{}, false
	}
	return model.RawResult{Laps: laps}, true
}

func asSeconds(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case string:
		secs, err := ParseLapTime(t)
		if err != nil {
			return 0, false
		}
		return secs, true
	default:
		return 0, false
	}
}

// LoadSeasonDir walks a directory of "<year>_<circuit>_results.json" files
// and returns the raw tables keyed by season. Files for other circuits are
// ignored; unreadable files are logged and skipped.
func LoadSeasonDir(dir, circuit string) (map[int]model.RawEventRecords, error) {
	logger := log.GetLogger("ingest")
	pattern := filepath.Join(dir, fmt.Sprintf("*_%s_*results.json", circuit))
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	out := make(map[int]model.RawEventRecords, len(files))
	for _, file := range files {
		season, err := seasonFromFilename(file)
		if err != nil {
			logger.Warn("skipping file without season prefix", log.String("file", file))
			continue
		}
		data, err := os.ReadFile(file)
		if err != nil {
			logger.Warn("skipping unreadable file",
				log.String("file", file), log.ErrorField(err))
			continue
		}
		records, malformed, err := ParseEventRecords(data)
		if err != nil {
			logger.Warn("skipping unparsable file",
				log.String("file", file), log.ErrorField(err))
			continue
		}
		if malformed > 0 {
			logger.Warn("dropped malformed entries",
				log.String("file", file), log.Int("count", malformed))
		}
		out[season] = records
	}
	return out, nil
}

func seasonFromFilename(path string) (int, error) {
	base := filepath.Base(path)
	prefix, _, found := strings.Cut(base, "_")
	if !found {
		return 0, fmt.Errorf("no season prefix in %q", base)
	}
	return strconv.Atoi(prefix)
}
