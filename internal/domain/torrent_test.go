package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want uint64
	}{
		{"plain id", "42", 42},
		{"large id", "1650000", 1650000},
		{"non-numeric defaults to zero", "abc", 0},
		{"empty defaults to zero", "", 0},
		{"negative defaults to zero", "-5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Torrent{ID: tt.id}.NumericID())
		})
	}
}

func TestViewedBy(t *testing.T) {
	rec := Torrent{ID: "42"}

	assert.False(t, rec.ViewedBy(41))
	assert.True(t, rec.ViewedBy(42), "a record is viewed when the watermark reaches its id")
	assert.True(t, rec.ViewedBy(100))
}
