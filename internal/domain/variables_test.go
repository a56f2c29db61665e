package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariableSlots(t *testing.T) {
	slots := VariableSlots()
	require.Len(t, slots, 45)
	assert.Equal(t, "accent_color", slots[0].Slug())
	assert.Equal(t, "secondary_sidebar_shade_color", slots[len(slots)-1].Slug())

	seen := make(map[string]bool)
	for _, s := range slots {
		assert.False(t, seen[s.Slug()], "duplicate slug %s", s.Slug())
		seen[s.Slug()] = true
		assert.NotNil(t, s.Default())
	}

	slot, ok := VariableSlotBySlug("card_bg_color")
	require.True(t, ok)
	assert.Equal(t, CardBgColor, slot)

	_, ok = VariableSlotBySlug("nope")
	assert.False(t, ok)
}

func TestVariablesGetFallsBackToDefault(t *testing.T) {
	var v Variables
	assert.Equal(t, ByMode{Light: "#3584e4", Dark: "#78aeed"}, v.Get(AccentColor))

	v.Set(AccentColor, Single("#111111"))
	assert.Equal(t, Single("#111111"), v.Get(AccentColor))
}

func TestVariablesUnmarshal(t *testing.T) {
	var v Variables
	err := json.Unmarshal([]byte(`{"accent_color":"#111111","made_up_color":"#000"}`), &v)
	require.NoError(t, err)

	assert.Equal(t, Single("#111111"), v.Get(AccentColor))
	assert.Equal(t, ByMode{Light: "#fafafa", Dark: "#242424"}, v.Get(WindowBgColor))
}

func TestVariablesUnmarshalNamesBadSlot(t *testing.T) {
	var v Variables
	err := json.Unmarshal([]byte(`{"view_bg_color":{"light":"#fff"}}`), &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "view_bg_color")
	assert.ErrorIs(t, err, ErrUnknownVariable)
}

func TestVariablesEachOrder(t *testing.T) {
	v := DefaultVariables()

	var slugs []string
	v.Each(func(slot VariableSlot, value Variable) {
		slugs = append(slugs, slot.Slug())
	})

	require.Len(t, slugs, 45)
	assert.Equal(t, "accent_color", slugs[0])
	assert.Equal(t, "accent_bg_color", slugs[1])
}

func TestVariablesMarshalKeepsOrder(t *testing.T) {
	v := DefaultVariables()
	data, err := json.Marshal(v)
	require.NoError(t, err)

	s := string(data)
	assert.Less(t, strings.Index(s, `"accent_color"`), strings.Index(s, `"window_bg_color"`))
	assert.Less(t, strings.Index(s, `"window_bg_color"`), strings.Index(s, `"secondary_sidebar_shade_color"`))
}

func TestShellDefaults(t *testing.T) {
	slots := ShellSlots()
	require.Len(t, slots, 10)
	assert.Equal(t, "bg_color", slots[0].Slug())
	assert.Equal(t, "system_fg_color", slots[len(slots)-1].Slug())

	var s ShellDefaults
	require.NoError(t, json.Unmarshal([]byte(`{"panel_bg_color":"#000000"}`), &s))
	assert.Equal(t, Single("#000000"), s.Get(ShellPanelBgColor))
	assert.Equal(t, ByMode{Light: "#ffffff", Dark: "#1e1e1e"}, s.Get(ShellBgColor))
}
