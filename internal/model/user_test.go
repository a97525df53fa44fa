package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserSchema_EmailIsCaseSensitiveUnique(t *testing.T) {
	field, ok := reflect.TypeOf(User{}).FieldByName("Email")
	assert.True(t, ok)

	tag := field.Tag.Get("gorm")
	// MySQL's default collation compares case-insensitively; the binary
	// collation keeps email uniqueness and lookups case-sensitive as stored
	assert.Contains(t, tag, "COLLATE utf8mb4_bin")
	assert.Contains(t, tag, "uniqueIndex")
	assert.Contains(t, tag, "not null")
}

func TestUserSchema_GoogleIDIsSparseUnique(t *testing.T) {
	field, ok := reflect.TypeOf(User{}).FieldByName("GoogleID")
	assert.True(t, ok)
	// pointer type: NULL for unlinked rows, so the unique index skips them
	assert.Equal(t, reflect.Ptr, field.Type.Kind())
	assert.Contains(t, field.Tag.Get("gorm"), "uniqueIndex")
}
