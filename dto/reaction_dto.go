package dto

// ReactionInputDTO используется при голосовании за место или изображение.
// ClientID обязателен только для анонимных реакций.
type ReactionInputDTO struct {
	Value    int    `json:"value" binding:"required,oneof=-1 1"` // +1 — лайк, -1 — дизлайк
	ClientID string `json:"client_id"`
}

// ReactionCountsDTO — сводка реакций по цели. My — собственная реакция
// запрашивающего субъекта, nil если он ещё не голосовал.
type ReactionCountsDTO struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
	My       *int  `json:"my"`
}
