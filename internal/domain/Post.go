package domain

import "time"

type MediaType int

const (
	MediaTypeUnknown  MediaType = 0
	MediaTypeImage    MediaType = 1
	MediaTypeVideo    MediaType = 2
	MediaTypeCarousel MediaType = 3
	MediaTypeReels    MediaType = 4
)

// IsVideo indica se a mídia conta como vídeo nas métricas diárias
func (m MediaType) IsVideo() bool {
	return m == MediaTypeVideo || m == MediaTypeReels
}

type Post struct {
	ID             int64      `json:"id"`
	AccountID      string     `json:"account_id"`
	ExternalPostID string     `json:"external_post_id"`
	MediaType      MediaType  `json:"media_type"`
	Caption        *string    `json:"caption"`
	Link           *string    `json:"link"`
	PostedAt       *time.Time `json:"posted_at"`
	ScrapedAt      time.Time  `json:"scraped_at"`
}

type PostMetric struct {
	PostID     int64     `json:"post_id"`
	Likes      int64     `json:"likes"`
	Comments   int64     `json:"comments"`
	Views      *int64    `json:"views"`
	MetricDate time.Time `json:"metric_date"`
}

type SyncRunStatus string

const (
	SyncRunStatusRunning   SyncRunStatus = "running"
	SyncRunStatusSucceeded SyncRunStatus = "succeeded"
	SyncRunStatusFailed    SyncRunStatus = "failed"
)

// SyncRun registra o progresso de uma sincronização.
// Step guarda a última etapa concluída.
type SyncRun struct {
	ID         string        `json:"id"`
	Kind       string        `json:"kind"`
	Target     string        `json:"target"`
	Status     SyncRunStatus `json:"status"`
	Step       string        `json:"step"`
	Error      *string       `json:"error,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt *time.Time    `json:"finished_at,omitempty"`
}
