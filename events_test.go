package timelinedb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimelineDB_AddAndByID(t *testing.T) {
	var db TimelineDB
	db.Add(TimelineEvent{ID: 0, Name: "ch0", Description: "channel 0"})
	db.Add(TimelineEvent{ID: 1, Name: "ch1", Description: "channel 1"})

	e, ok := db.ByID(1)
	assert.True(t, ok)
	assert.Equal(t, "ch1", e.Name)

	_, ok = db.ByID(7)
	assert.False(t, ok)
}
