package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDatabase_RequiresURL(t *testing.T) {
	db, err := NewDatabase("")
	assert.Nil(t, db)
	assert.EqualError(t, err, "DATABASE_URL is not set")
}
