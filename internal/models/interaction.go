package models

// InteractionState is what a client sees for an open project view
type InteractionState struct {
	ProjectID      string `json:"project_id"`
	Views          int    `json:"views"`
	Likes          int    `json:"likes"`
	ViewsFormatted string `json:"views_formatted"`
	LikesFormatted string `json:"likes_formatted"`
	Liked          bool   `json:"liked"`
	LikePending    bool   `json:"like_pending"`
}
