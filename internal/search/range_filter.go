package search

import "github.com/vfg2006/influencer-hub-api/internal/domain"

// Within verifica se a linha normalizada respeita os três intervalos (inclusivos)
func Within(row Row, filters domain.Filters) bool {
	return filters.Likes.Contains(row.Likes) &&
		filters.Posts.Contains(row.Posts) &&
		filters.Followers.Contains(row.Followers)
}

// ApplyRanges mantém apenas as linhas dentro dos intervalos, preservando a ordem.
// Deve rodar depois de Normalize; nunca adiciona linhas.
func ApplyRanges(rows []Row, filters domain.Filters) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if Within(row, filters) {
			out = append(out, row)
		}
	}
	return out
}
