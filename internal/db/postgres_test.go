package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloseWithoutPool(t *testing.T) {
	// Shutdown closes the database through this method even when the
	// pool was never established.
	database := &PostgresDB{}
	assert.NotPanics(t, func() { database.Close() })
}
