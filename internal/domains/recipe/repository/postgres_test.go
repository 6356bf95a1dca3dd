package repository

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram-backend/internal/domains/recipe/model"
)

var placeholderPattern = regexp.MustCompile(`\$(\d+)`)

// maxPlaceholder returns the highest $n referenced in a query fragment.
func maxPlaceholder(t *testing.T, query string) int {
	t.Helper()
	max := 0
	for _, match := range placeholderPattern.FindAllStringSubmatch(query, -1) {
		n, err := strconv.Atoi(match[1])
		require.NoError(t, err)
		if n > max {
			max = n
		}
	}
	return max
}

func TestBuildRecipeFilter_NoFilters(t *testing.T) {
	where, args := buildRecipeFilter(nil, model.ListRecipesRequest{}, nil)

	assert.Equal(t, "", where)
	assert.Empty(t, args)
}

func TestBuildRecipeFilter_SeededViewerIsReused(t *testing.T) {
	viewer := uuid.New()
	req := model.ListRecipesRequest{IsFavorited: true, IsInShoppingCart: true}

	where, args := buildRecipeFilter(&viewer, req, []interface{}{viewer})

	assert.Contains(t, where, "favorites f WHERE f.user_id = $1")
	assert.Contains(t, where, "shopping_cart_entries sc WHERE sc.user_id = $1")
	require.Len(t, args, 1)
	assert.Equal(t, viewer, args[0])
}

func TestBuildRecipeFilter_UnseededViewerBoundOnce(t *testing.T) {
	viewer := uuid.New()
	req := model.ListRecipesRequest{IsFavorited: true, IsInShoppingCart: true}

	where, args := buildRecipeFilter(&viewer, req, nil)

	assert.Contains(t, where, "favorites f WHERE f.user_id = $1")
	assert.Contains(t, where, "shopping_cart_entries sc WHERE sc.user_id = $1")
	require.Len(t, args, 1)
	assert.Equal(t, viewer, args[0])
}

func TestBuildRecipeFilter_AuthorAndTags(t *testing.T) {
	viewer := uuid.New()
	author := uuid.New()
	req := model.ListRecipesRequest{
		Author: author.String(),
		Tags:   []string{"breakfast", "dinner"},
	}

	// View query numbering: viewer seeded as $1
	where, args := buildRecipeFilter(&viewer, req, []interface{}{viewer})
	assert.Contains(t, where, "r.author_id = $2")
	assert.Contains(t, where, "t.slug = ANY($3)")
	require.Len(t, args, 3)
	assert.Equal(t, author, args[1])
	assert.Equal(t, []string{"breakfast", "dinner"}, args[2])

	// Count query numbering: nothing seeded, placeholders start at $1
	where, args = buildRecipeFilter(&viewer, req, nil)
	assert.Contains(t, where, "r.author_id = $1")
	assert.Contains(t, where, "t.slug = ANY($2)")
	assert.Len(t, args, 2)
}

func TestBuildRecipeFilter_MalformedAuthorMatchesNothing(t *testing.T) {
	where, args := buildRecipeFilter(nil, model.ListRecipesRequest{Author: "not-a-uuid"}, nil)

	assert.Contains(t, where, "FALSE")
	assert.Empty(t, args)
}

func TestBuildRecipeFilter_FlagFiltersRequireViewer(t *testing.T) {
	req := model.ListRecipesRequest{IsFavorited: true, IsInShoppingCart: true}

	where, args := buildRecipeFilter(nil, req, nil)
	assert.Equal(t, "", where)
	assert.Empty(t, args)
}

// Every clause the builder emits must declare exactly as many
// placeholders as it returns arguments, for both the count layout (no
// seed) and the view layout (viewer seeded as $1).
func TestBuildRecipeFilter_PlaceholdersMatchArgs(t *testing.T) {
	viewer := uuid.New()
	requests := map[string]struct {
		viewer *uuid.UUID
		req    model.ListRecipesRequest
	}{
		"anonymous no filters":     {nil, model.ListRecipesRequest{}},
		"authenticated no filters": {&viewer, model.ListRecipesRequest{}},
		"anonymous flag filters":   {nil, model.ListRecipesRequest{IsFavorited: true}},
		"author only":              {nil, model.ListRecipesRequest{Author: uuid.New().String()}},
		"tags only":                {&viewer, model.ListRecipesRequest{Tags: []string{"soup"}}},
		"everything": {&viewer, model.ListRecipesRequest{
			Author:           uuid.New().String(),
			Tags:             []string{"soup", "dinner"},
			IsFavorited:      true,
			IsInShoppingCart: true,
		}},
	}

	for name, tc := range requests {
		t.Run(name, func(t *testing.T) {
			// Count layout
			where, args := buildRecipeFilter(tc.viewer, tc.req, nil)
			assert.Equal(t, len(args), maxPlaceholder(t, where),
				"count query placeholders must match its args")

			// View layout: $1 is the seeded viewer, always referenced
			// by the base query itself
			where, args = buildRecipeFilter(tc.viewer, tc.req, []interface{}{uuid.Nil})
			max := maxPlaceholder(t, where)
			if max == 0 {
				max = 1
			}
			assert.Equal(t, len(args), max,
				"view query placeholders must match its args")
		})
	}
}
