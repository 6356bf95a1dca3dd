package job

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRecipeIDFromKey(t *testing.T) {
	id := uuid.New()

	got, ok := recipeIDFromKey("recipes/" + id.String() + "/original.jpg")
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = recipeIDFromKey("recipes/not-a-uuid/original.jpg")
	assert.False(t, ok)

	_, ok = recipeIDFromKey("avatars/" + id.String() + "/original.jpg")
	assert.False(t, ok)

	_, ok = recipeIDFromKey("recipes/" + id.String())
	assert.False(t, ok)
}
