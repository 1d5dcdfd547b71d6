package social

type CreatePostRequest struct {
	ActorID  string `json:"actor_id" validate:"required"`
	ImageURL string `json:"image_url" validate:"required"`
	Caption  string `json:"caption" validate:"max=2200"`
}
