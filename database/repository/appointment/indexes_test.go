package appointmentRepo

import (
	"testing"

	"concierge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// partialFilterExpression accepts only equality, $eq, $exists:true, range
// operators, $type, $and, $or and $in. Anything else ($ne, $nin, $not) makes
// createIndexes fail server-side and the service never boots.
var allowedPartialFilterOps = map[string]bool{
	"$eq": true, "$exists": true, "$gt": true, "$gte": true,
	"$lt": true, "$lte": true, "$type": true, "$and": true,
	"$or": true, "$in": true,
}

func assertSupportedOps(t *testing.T, v any) {
	t.Helper()
	switch val := v.(type) {
	case bson.M:
		for k, inner := range val {
			if len(k) > 0 && k[0] == '$' {
				assert.True(t, allowedPartialFilterOps[k],
					"operator %s is not supported in partialFilterExpression", k)
			}
			assertSupportedOps(t, inner)
		}
	case bson.D:
		for _, e := range val {
			if len(e.Key) > 0 && e.Key[0] == '$' {
				assert.True(t, allowedPartialFilterOps[e.Key],
					"operator %s is not supported in partialFilterExpression", e.Key)
			}
			assertSupportedOps(t, e.Value)
		}
	case []any:
		for _, e := range val {
			assertSupportedOps(t, e)
		}
	}
}

func TestSlotIndexPartialFilterUsesSupportedOperators(t *testing.T) {
	for _, model := range appointmentIndexModels() {
		if model.Options == nil || model.Options.PartialFilterExpression == nil {
			continue
		}
		assertSupportedOps(t, model.Options.PartialFilterExpression)
	}
}

func TestSlotIndexCoversActiveStatusesOnly(t *testing.T) {
	var filter bson.M
	var unique bool
	for _, model := range appointmentIndexModels() {
		if model.Options != nil && model.Options.Name != nil && *model.Options.Name == "unique_active_slot" {
			f, ok := model.Options.PartialFilterExpression.(bson.M)
			require.True(t, ok)
			filter = f
			unique = model.Options.Unique != nil && *model.Options.Unique
		}
	}
	require.NotNil(t, filter, "unique_active_slot index missing")

	statuses, ok := filter["status"].(bson.M)
	require.True(t, ok)
	in, ok := statuses["$in"].([]string)
	require.True(t, ok)

	// Cancelled appointments must fall outside the index so their slot frees up.
	assert.ElementsMatch(t, []string{
		string(models.AppointmentPending),
		string(models.AppointmentConfirmed),
	}, in)
	assert.True(t, unique)
}
