package logistics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkrivich/logiplan/model"
)

func oneCitySetting(t *testing.T) *model.Setting {
	t.Helper()
	s, err := model.NewSetting(1, []int{0, 0}, []int{0})
	require.NoError(t, err)

	return s
}

func TestConfiguration_IsGoal(t *testing.T) {
	s := oneCitySetting(t)
	delivered := []model.Package{{Position: 0, Destination: 0, State: model.Out, Vehicle: -1}}
	require.True(t, NewConfiguration(s, nil, nil, delivered).IsGoal())

	pending := []model.Package{{Position: 0, Destination: 1, State: model.Out, Vehicle: -1}}
	require.False(t, NewConfiguration(s, nil, nil, pending).IsGoal())
}

func TestConfiguration_Successor_LoadDriveUnload(t *testing.T) {
	s := oneCitySetting(t)
	trucks := []model.Vehicle{{Position: 0}}
	packages := []model.Package{{Position: 0, Destination: 1, State: model.Out, Vehicle: -1}}
	c := NewConfiguration(s, trucks, nil, packages)

	load, err := model.NewAction(model.Load, 0, 0)
	require.NoError(t, err)
	c = c.Successor(load)
	require.Equal(t, model.InTruck, c.Packages[0].State)
	require.Equal(t, []int{0}, c.Trucks[0].Load)

	drive, err := model.NewAction(model.Drive, 0, 1)
	require.NoError(t, err)
	c = c.Successor(drive)
	require.Equal(t, 1, c.Trucks[0].Position)
	require.Equal(t, 1, c.Packages[0].Position, "package rides with the truck")

	unload, err := model.NewAction(model.Unload, 0, 0)
	require.NoError(t, err)
	c = c.Successor(unload)
	require.Equal(t, model.Out, c.Packages[0].State)
	require.Empty(t, c.Trucks[0].Load)
	require.True(t, c.IsGoal())
}

func TestConfiguration_Successor_DoesNotMutateSource(t *testing.T) {
	s := oneCitySetting(t)
	trucks := []model.Vehicle{{Position: 0}}
	packages := []model.Package{{Position: 0, Destination: 1, State: model.Out, Vehicle: -1}}
	original := NewConfiguration(s, trucks, nil, packages)

	drive, err := model.NewAction(model.Drive, 0, 1)
	require.NoError(t, err)
	_ = original.Successor(drive)

	require.Equal(t, 0, original.Trucks[0].Position, "successor must not mutate the source")
}

func TestConfiguration_Successor_Inverses(t *testing.T) {
	s := oneCitySetting(t)
	trucks := []model.Vehicle{{Position: 0}}
	packages := []model.Package{{Position: 0, Destination: 0, State: model.Out, Vehicle: -1}}
	original := NewConfiguration(s, trucks, nil, packages)

	load, _ := model.NewAction(model.Load, 0, 0)
	unload, _ := model.NewAction(model.Unload, 0, 0)
	roundTripped := original.Successor(load).Successor(unload)

	require.Equal(t, original.Trucks, roundTripped.Trucks)
	require.Equal(t, original.Packages, roundTripped.Packages)
}
