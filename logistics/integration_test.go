package logistics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkrivich/logiplan/model"
	"github.com/mkrivich/logiplan/search"
)

func planVerbs(t *testing.T, actions []search.Action) []string {
	t.Helper()
	verbs := make([]string, len(actions))
	for i, a := range actions {
		act, ok := a.(model.Action)
		require.True(t, ok)
		verbs[i] = act.Type.String()
	}

	return verbs
}

func TestScenario1_SinglePackageSamePlace(t *testing.T) {
	s, err := model.NewSetting(1, []int{0}, []int{0})
	require.NoError(t, err)
	trucks := []model.Vehicle{{Position: 0}}
	packages := []model.Package{{Position: 0, Destination: 0, State: model.Out, Vehicle: -1}}
	p := NewProblem(s, NewConfiguration(s, trucks, nil, packages))

	cost, actions := search.Solve(p, search.Unbounded)
	require.Equal(t, 0, cost)
	require.Empty(t, actions)
}

func TestScenario2_SameCityDifferentPlace(t *testing.T) {
	s, err := model.NewSetting(1, []int{0, 0}, []int{0})
	require.NoError(t, err)
	trucks := []model.Vehicle{{Position: 0}}
	packages := []model.Package{{Position: 0, Destination: 1, State: model.Out, Vehicle: -1}}
	p := NewProblem(s, NewConfiguration(s, trucks, nil, packages))

	cost, actions := search.Solve(p, search.Unbounded)
	require.Equal(t, 21, cost)
	require.Equal(t, []string{"load", "drive", "unload"}, planVerbs(t, actions))
}

func TestScenario3_TwoCities(t *testing.T) {
	s, err := model.NewSetting(2, []int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	trucks := []model.Vehicle{{Position: 0}}
	airplanes := []model.Vehicle{{Position: 0}}
	packages := []model.Package{{Position: 0, Destination: 1, State: model.Out, Vehicle: -1}}
	p := NewProblem(s, NewConfiguration(s, trucks, airplanes, packages))

	cost, actions := search.Solve(p, search.Unbounded)
	require.Equal(t, 1025, cost)
	require.Equal(t, []string{"pickUp", "fly", "dropOff"}, planVerbs(t, actions))
}

func TestScenario4_TruckToAirport(t *testing.T) {
	s, err := model.NewSetting(2, []int{0, 0, 1}, []int{0, 2})
	require.NoError(t, err)
	trucks := []model.Vehicle{{Position: 1}}
	airplanes := []model.Vehicle{{Position: 0}}
	packages := []model.Package{{Position: 1, Destination: 2, State: model.Out, Vehicle: -1}}
	p := NewProblem(s, NewConfiguration(s, trucks, airplanes, packages))

	cost, actions := search.Solve(p, search.Unbounded)
	require.Equal(t, 1046, cost)
	require.Equal(t,
		[]string{"load", "drive", "unload", "pickUp", "fly", "dropOff"},
		planVerbs(t, actions))
}

func TestScenario5_CapacityBoundedIterationCap(t *testing.T) {
	s, err := model.NewSetting(1, []int{0, 0}, []int{0})
	require.NoError(t, err)
	trucks := []model.Vehicle{{Position: 0}}
	packages := make([]model.Package, model.TruckCapacity+1)
	for i := range packages {
		packages[i] = model.Package{Position: 0, Destination: 1, State: model.Out, Vehicle: -1}
	}
	p := NewProblem(s, NewConfiguration(s, trucks, nil, packages))

	cost, actions := search.Solve(p, 1)
	require.Equal(t, search.UnreachableCost, cost)
	require.NotEmpty(t, actions)

	// The returned plan must be a valid prefix replayable from the start.
	state := p.InitialState()
	for _, a := range actions {
		act := a.(model.Action)
		state = state.(Configuration).Successor(act)
	}
}
