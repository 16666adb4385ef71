package main

import (
	"testing"
	"time"

	"github.com/Veraticus/lifedash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		want    time.Time
		name    string
		input   string
		wantErr bool
	}{
		{name: "empty", input: "", want: time.Time{}},
		{name: "today", input: "Today", want: now},
		{name: "yesterday", input: " yesterday ", want: now.AddDate(0, 0, -1)},
		{name: "iso date", input: "2024-06-01", want: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: "next week", wantErr: true},
		{name: "us date", input: "06/01/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestResolveID(t *testing.T) {
	ids := []string{"abc123", "abd456", "xyz789"}

	tests := []struct {
		name   string
		ref    string
		want   string
		wantOK bool
	}{
		{name: "exact", ref: "xyz789", want: "xyz789", wantOK: true},
		{name: "unique prefix", ref: "abc", want: "abc123", wantOK: true},
		{name: "ambiguous prefix", ref: "ab", wantOK: false},
		{name: "no match", ref: "q", wantOK: false},
		{name: "empty", ref: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveID(tt.ref, ids)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{input: "12.50", want: 12.5},
		{input: "$7", want: 7},
		{input: "1,200", want: 1200},
		{input: "0", wantErr: true},
		{input: "-3", wantErr: true},
		{input: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestResolveGoal(t *testing.T) {
	goals := []model.FitnessGoal{
		{ID: "11aa", Type: model.FitnessWater},
		{ID: "22bb", Type: model.FitnessSteps},
		{ID: "33cc", Type: model.FitnessWater},
	}

	tests := []struct {
		name   string
		ref    string
		want   string
		wantOK bool
	}{
		{name: "by id prefix", ref: "22", want: "22bb", wantOK: true},
		{name: "by type picks latest", ref: "water", want: "33cc", wantOK: true},
		{name: "type is case insensitive", ref: "Steps", want: "22bb", wantOK: true},
		{name: "unknown", ref: "sleep", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveGoal(tt.ref, goals)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0123abcd", shortID("0123abcd-4567-89ef"))
	assert.Equal(t, "short", shortID("short"))
}
