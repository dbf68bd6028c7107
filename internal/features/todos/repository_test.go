package todos

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildListFilter_OwnerScopedAlways(t *testing.T) {
	filter := buildListFilter("user-1", ListQuery{})
	require.Equal(t, "user-1", filter["userId"])
	require.NotContains(t, filter, "$or")
	require.NotContains(t, filter, "status")
}

func TestBuildListFilter_SearchIsCaseInsensitive(t *testing.T) {
	filter := buildListFilter("user-1", ListQuery{Search: "milk"})

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	title := or[0].(bson.M)["title"].(primitive.Regex)
	require.Equal(t, "milk", title.Pattern)
	require.Equal(t, "i", title.Options)

	desc := or[1].(bson.M)["description"].(primitive.Regex)
	require.Equal(t, "milk", desc.Pattern)
	require.Equal(t, "i", desc.Options)
}

func TestBuildListFilter_SearchQuotesRegexMeta(t *testing.T) {
	filter := buildListFilter("user-1", ListQuery{Search: "a.b*"})

	or := filter["$or"].(bson.A)
	title := or[0].(bson.M)["title"].(primitive.Regex)
	require.Equal(t, `a\.b\*`, title.Pattern)
}

func TestBuildListFilter_ExactMatchFilters(t *testing.T) {
	filter := buildListFilter("user-1", ListQuery{Status: StatusCompleted, Priority: PriorityHigh})
	require.Equal(t, StatusCompleted, filter["status"])
	require.Equal(t, PriorityHigh, filter["priority"])
}
