package uuidx

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("generates version 7 ids", func(t *testing.T) {
		id := New()
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, uuid.Version(7), id.Version())
	})

	t.Run("ids are time ordered", func(t *testing.T) {
		a, b := NewString(), NewString()
		assert.Less(t, a, b)
	})
}
