package game

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The unique index on position backstops the claim-ordering lock; a
// duplicate assignment must fail at the database even if the lock is
// ever lost.
func TestClaimPositionDeclaresUniqueIndex(t *testing.T) {
	field, ok := reflect.TypeOf(Claim{}).FieldByName("Position")
	require.True(t, ok)
	assert.Contains(t, field.Tag.Get("gorm"), "uniqueIndex")
}

func TestClaimTableName(t *testing.T) {
	assert.Equal(t, "bingo_claims", Claim{}.TableName())
}
