package shared

// Asynq queue names
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

// Asynq task types
const (
	TypeProcessRecipeImage  = "recipe:process_image"
	TypeDeleteRecipeImages  = "recipe:delete_images"
	TypeCleanupOrphanImages = "recipe:cleanup_orphan_images"
)

// ProcessRecipeImagePayload is the payload for TypeProcessRecipeImage.
type ProcessRecipeImagePayload struct {
	RecipeID string `json:"recipe_id"`
}

// DeleteRecipeImagesPayload is the payload for TypeDeleteRecipeImages.
type DeleteRecipeImagesPayload struct {
	RecipeID string `json:"recipe_id"`
}

// CleanupOrphanImagesPayload is the payload for the scheduled cleanup job.
type CleanupOrphanImagesPayload struct{}
