package igdomain

type Media struct {
	ID            string  `json:"id"`
	Caption       *string `json:"caption"`
	MediaType     string  `json:"media_type"`
	Permalink     *string `json:"permalink"`
	Timestamp     *string `json:"timestamp"`
	LikeCount     *int64  `json:"like_count"`
	CommentsCount *int64  `json:"comments_count"`
}

type MediaPage struct {
	Data []Media `json:"data"`
}

// InsightsResponse cobre tanto os insights de perfil quanto os de mídia
type InsightsResponse struct {
	Data []InsightItem `json:"data"`
}

type InsightItem struct {
	Name   string         `json:"name"`
	Values []InsightValue `json:"values"`
}

type InsightValue struct {
	Value *float64 `json:"value"`
}

// Pick retorna o primeiro valor numérico da métrica, ou nil
func (r *InsightsResponse) Pick(name string) *int64 {
	if r == nil {
		return nil
	}
	for _, item := range r.Data {
		if item.Name != name || len(item.Values) == 0 || item.Values[0].Value == nil {
			continue
		}
		v := int64(*item.Values[0].Value)
		return &v
	}
	return nil
}

// ViewsLike aproxima visualizações: plays, video_views, impressions e por fim reach
func (r *InsightsResponse) ViewsLike() *int64 {
	for _, name := range []string{"plays", "video_views", "impressions", "reach"} {
		if v := r.Pick(name); v != nil {
			return v
		}
	}
	return nil
}
