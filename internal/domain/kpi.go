package domain

import "time"

// KpiSnapshot é a fotografia diária de métricas de produto de um tenant.
// Única por (tenant, snapshot_date); 0 <= dau <= mau.
type KpiSnapshot struct {
	ID              string                 `json:"id"`
	TenantID        string                 `json:"tenant_id"`
	SnapshotDate    time.Time              `json:"snapshot_date"`
	DAU             int                    `json:"dau"`
	MAU             int                    `json:"mau"`
	FeatureUsage    map[string]int         `json:"feature_usage,omitempty"`
	CohortRetention []CohortRetentionEntry `json:"cohort_retention,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// CohortRetentionEntry é uma observação de retenção registrada junto ao snapshot
type CohortRetentionEntry struct {
	CohortKey     string  `json:"cohort_key"`
	PeriodNumber  int     `json:"period_number"`
	RetentionRate float64 `json:"retention_rate"`
}

// DauGrowth calcula o crescimento relativo de DAU entre o snapshot mais
// antigo e o mais recente de uma janela. A janela chega ordenada da mais
// recente para a mais antiga, como o repositório devolve.
func DauGrowth(newestFirst []*KpiSnapshot) float64 {
	if len(newestFirst) < 2 {
		return 0
	}

	newest := newestFirst[0]
	oldest := newestFirst[len(newestFirst)-1]
	if oldest.DAU <= 0 {
		return 0
	}

	return float64(newest.DAU-oldest.DAU) / float64(oldest.DAU)
}
