package logistics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkrivich/logiplan/model"
)

func TestProblem_Enumerate_OrderIsDriveThenUnloadThenLoadThenFly(t *testing.T) {
	// 2 cities, places 0,1 in city 0 (airport 0), place 2 in city 1 (airport 2).
	s, err := model.NewSetting(2, []int{0, 0, 1}, []int{0, 2})
	require.NoError(t, err)

	trucks := []model.Vehicle{{Position: 0}}
	airplanes := []model.Vehicle{{Position: 0, Load: []int{1}}}
	packages := []model.Package{
		{Position: 0, Destination: 1, State: model.Out, Vehicle: -1},
		{Position: 0, Destination: 2, State: model.InPlane, Vehicle: 0},
	}
	initial := NewConfiguration(s, trucks, airplanes, packages)
	p := NewProblem(s, initial)

	transitions := p.Enumerate(initial)
	require.NotEmpty(t, transitions)

	var kinds []model.ActionType
	for _, tr := range transitions {
		kinds = append(kinds, tr.Action.(model.Action).Type)
	}

	firstFly := indexOf(kinds, model.Fly)
	firstLoad := indexOf(kinds, model.Load)
	firstDropOff := indexOf(kinds, model.DropOff)
	firstDrive := indexOf(kinds, model.Drive)

	require.Less(t, firstDrive, firstDropOff)
	require.Less(t, firstDropOff, firstLoad)
	require.Less(t, firstLoad, firstFly)
}

func indexOf(kinds []model.ActionType, target model.ActionType) int {
	for i, k := range kinds {
		if k == target {
			return i
		}
	}

	return len(kinds)
}

func TestProblem_Enumerate_RespectsTruckCapacity(t *testing.T) {
	s, err := model.NewSetting(1, []int{0}, []int{0})
	require.NoError(t, err)

	full := make([]int, model.TruckCapacity)
	for i := range full {
		full[i] = i + 1
	}
	trucks := []model.Vehicle{{Position: 0, Load: full}}
	packages := append([]model.Package{{Position: 0, Destination: 0, State: model.Out, Vehicle: -1}},
		make([]model.Package, model.TruckCapacity)...)
	initial := NewConfiguration(s, trucks, nil, packages)
	p := NewProblem(s, initial)

	for _, tr := range p.Enumerate(initial) {
		act := tr.Action.(model.Action)
		require.NotEqual(t, model.Load, act.Type, "a full truck must never be offered a LOAD")
	}
}
