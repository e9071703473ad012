package timelinedb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString_NeverEmpty(t *testing.T) {
	s := VersionString()
	assert.NotEmpty(t, s)
	assert.True(t, strings.HasPrefix(s, "timelinedb "))
}
