package search

import "github.com/vfg2006/influencer-hub-api/internal/domain"

// Normalize trata métrica desconhecida (nil) ou negativa como zero.
// Esta é uma política de negócio para a filtragem por intervalo: contas sem
// métricas conhecidas não devem ser descartadas silenciosamente.
func Normalize(v *int64) int64 {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}

// LatestSnapshot retorna o primeiro snapshot da lista já ordenada do mais novo
// para o mais antigo, ou nil se a lista estiver vazia.
func LatestSnapshot(metrics []domain.MetricSnapshot) *domain.MetricSnapshot {
	if len(metrics) == 0 {
		return nil
	}
	return &metrics[0]
}

// Row é uma conta com as métricas do snapshot mais recente já normalizadas
type Row struct {
	Account   *domain.Account        `json:"account"`
	Latest    *domain.MetricSnapshot `json:"latest_metrics"`
	Likes     int64                  `json:"likes"`
	Posts     int64                  `json:"posts"`
	Followers int64                  `json:"followers"`
}

func NormalizeAccount(acc *domain.Account) Row {
	row := Row{Account: acc}
	if acc == nil {
		return row
	}

	latest := LatestSnapshot(acc.Metrics)
	row.Latest = latest
	if latest != nil {
		row.Likes = Normalize(latest.MaximumLikes)
		row.Posts = Normalize(latest.Posts)
		row.Followers = Normalize(latest.Followers)
	}

	return row
}

func NormalizeAll(accounts []*domain.Account) []Row {
	rows := make([]Row, 0, len(accounts))
	for _, acc := range accounts {
		rows = append(rows, NormalizeAccount(acc))
	}
	return rows
}
