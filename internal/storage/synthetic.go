package storage

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// ── Synthetic generation ────────────────────────────────────
// Demo datasets shaped like an immune-profiling screen: three numeric
// fields sampled from condition-dependent ranges plus the condition
// label stored under the category key. The output is a Cat+3Num
// document that goes through the normal ingest path.

// Conditions is the fixed enumeration the category is drawn from.
var Conditions = []string{
	"control", "mild", "moderate", "severe", "critical", "recovered", "relapse",
}

type valueRange struct{ lo, hi float64 }

// Per-condition sampling ranges for lymphoid, myeloid and -log10P.
var conditionRanges = map[string][3]valueRange{
	"control":   {{0.5, 2.0}, {0.5, 2.0}, {0.0, 1.0}},
	"mild":      {{1.0, 3.0}, {1.0, 3.5}, {0.5, 2.5}},
	"moderate":  {{1.5, 4.5}, {2.0, 5.0}, {1.0, 4.0}},
	"severe":    {{2.0, 6.0}, {3.0, 7.5}, {2.0, 6.0}},
	"critical":  {{2.5, 8.0}, {4.0, 9.5}, {3.0, 8.0}},
	"recovered": {{0.8, 2.5}, {0.8, 3.0}, {0.2, 1.5}},
	"relapse":   {{1.8, 5.5}, {2.5, 6.5}, {1.5, 5.0}},
}

// GenerateSynthetic builds a synthetic dataset document with count
// records, ready for ingest. Count must be positive.
func GenerateSynthetic(count int) ([]byte, error) {
	if count <= 0 {
		return nil, fmt.Errorf("record count must be positive, got %d", count)
	}

	data := make([]map[string]any, 0, count)
	for i := 0; i < count; i++ {
		cond := Conditions[rand.IntN(len(Conditions))]
		ranges := conditionRanges[cond]
		data = append(data, map[string]any{
			"category": cond,
			"lymphoid": round3(sample(ranges[0])),
			"myeloid":  round3(sample(ranges[1])),
			"-log10P":  round3(sample(ranges[2])),
		})
	}

	doc := map[string]any{
		"name":        fmt.Sprintf("synthetic-%s", uuid.New().String()[:8]),
		"description": fmt.Sprintf("Synthetic immune profile, %d records", count),
		"data":        data,
	}
	return json.Marshal(doc)
}

func sample(r valueRange) float64 {
	return r.lo + rand.Float64()*(r.hi-r.lo)
}

func round3(f float64) float64 {
	return float64(int64(f*1000+0.5)) / 1000
}
