package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCost_BitExactWithSourceModel(t *testing.T) {
	cases := []struct {
		t    ActionType
		want int
	}{
		{Drive, 17},
		{Load, 2},
		{Unload, 2},
		{Fly, 1000},
		{PickUp, 14},
		{DropOff, 11},
	}
	for _, c := range cases {
		got, err := Cost(c.t)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}
}

func TestCost_UnknownType(t *testing.T) {
	_, err := Cost(ActionType(99))
	require.ErrorIs(t, err, ErrUnknownActionType)
}

func TestNewAction_String(t *testing.T) {
	a, err := NewAction(PickUp, 0, 3)
	require.NoError(t, err)
	require.Equal(t, "pickUp", a.Type.String())
	require.Equal(t, 0, a.Vehicle)
	require.Equal(t, 3, a.Value)
}

func TestVehicle_LoadRoundTrip(t *testing.T) {
	v := Vehicle{Position: 1}
	v = v.WithLoaded(5)
	v = v.WithLoaded(2)
	require.Equal(t, []int{2, 5}, v.Load)
	require.True(t, v.Carries(2))

	v = v.WithUnloaded(2)
	require.Equal(t, []int{5}, v.Load)
	require.False(t, v.Carries(2))
}
