package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/jazzgym/internal/catalog"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		timeLimit int
		enabled   []catalog.ChordType
		wantErr   error
	}{
		{"valid", 10, []catalog.ChordType{catalog.ChordMajor}, nil},
		{"lower bound", MinTimeLimit, []catalog.ChordType{catalog.ChordMajor}, nil},
		{"upper bound", MaxTimeLimit, []catalog.ChordType{catalog.ChordMajor}, nil},
		{"too low", 2, []catalog.ChordType{catalog.ChordMajor}, ErrTimeLimitOutOfRange},
		{"too high", 61, []catalog.ChordType{catalog.ChordMajor}, ErrTimeLimitOutOfRange},
		{"no categories", 10, nil, catalog.ErrNoCategoriesEnabled},
		{"time limit checked first", 0, nil, ErrTimeLimitOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.timeLimit, tt.enabled)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	chord := ChordDefaults()
	assert.Equal(t, DefaultTimeLimit, chord.TimeLimit)
	assert.Equal(t, catalog.AllChordTypes(), chord.Enabled)

	scale := ScaleDefaults()
	assert.Equal(t, DefaultTimeLimit, scale.TimeLimit)
	assert.Len(t, scale.Enabled, 7)
	assert.NotContains(t, scale.Enabled, catalog.ScaleLydian)
	assert.NotContains(t, scale.Enabled, catalog.ScalePhrygian)
	assert.NotContains(t, scale.Enabled, catalog.ScaleLocrian)

	assert.NoError(t, Validate(chord.TimeLimit, chord.Enabled))
	assert.NoError(t, Validate(scale.TimeLimit, scale.Enabled))
}
