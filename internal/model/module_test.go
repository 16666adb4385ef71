package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModule(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Module
		wantErr bool
	}{
		{name: "welcome", input: "welcome", want: Welcome},
		{name: "study planner", input: "studyPlanner", want: StudyPlanner},
		{name: "expense tracker", input: "expenseTracker", want: ExpenseTracker},
		{name: "habit tracker", input: "habitTracker", want: HabitTracker},
		{name: "analytics", input: "analytics", want: Analytics},
		{name: "wrong case", input: "StudyPlanner", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseModule(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownModule)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestAllModules(t *testing.T) {
	mods := AllModules()
	require.Len(t, mods, 5)
	assert.Equal(t, Welcome, mods[0])
	for _, m := range mods {
		assert.True(t, m.Valid())
		assert.NotEmpty(t, m.String())
	}
	assert.False(t, Module(42).Valid())
	assert.Equal(t, "Module(42)", Module(42).String())
}

func TestModule_JSON(t *testing.T) {
	type wrapper struct {
		M Module `json:"m"`
	}

	data, err := json.Marshal(wrapper{M: HabitTracker})
	require.NoError(t, err)
	assert.JSONEq(t, `{"m":"habitTracker"}`, string(data))

	var out wrapper
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, HabitTracker, out.M)

	err = json.Unmarshal([]byte(`{"m":"calendar"}`), &out)
	require.ErrorIs(t, err, ErrUnknownModule)

	_, err = json.Marshal(wrapper{M: Module(9)})
	require.Error(t, err)
}

func TestIntentParams(t *testing.T) {
	in := Intent{Parameters: map[string]any{
		ParamSubject:  "dsa",
		ParamDuration: 2,
		ParamAmount:   45.99,
	}}

	s, ok := in.StringParam(ParamSubject)
	assert.True(t, ok)
	assert.Equal(t, "dsa", s)

	d, ok := in.IntParam(ParamDuration)
	assert.True(t, ok)
	assert.Equal(t, 2, d)

	a, ok := in.FloatParam(ParamAmount)
	assert.True(t, ok)
	assert.InDelta(t, 45.99, a, 1e-9)

	_, ok = in.StringParam(ParamCategory)
	assert.False(t, ok)

	fb := FallbackIntent("hello")
	assert.Equal(t, Welcome, fb.Module)
	assert.Zero(t, fb.Confidence)
	assert.NotNil(t, fb.Parameters)
	assert.Equal(t, "hello", fb.RawText)
}
