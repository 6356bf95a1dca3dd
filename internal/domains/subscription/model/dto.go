package model

// ListSubscriptionsRequest request to list the viewer's subscriptions.
// RecipesLimit caps the number of recipes embedded per author.
type ListSubscriptionsRequest struct {
	Page         int `form:"page"`
	Limit        int `form:"limit"`
	RecipesLimit int `form:"recipes_limit"`
}

func (r *ListSubscriptionsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
	if r.RecipesLimit < 0 {
		r.RecipesLimit = 0
	}
}
