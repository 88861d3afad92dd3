package logistics

import (
	"fmt"
	"io"

	"github.com/mkrivich/logiplan/model"
	"github.com/mkrivich/logiplan/search"
)

// Print writes one line per action to w, using the verb produced by
// model.ActionType.String() and the (vehicle, value) payload, exactly as
// documented in the external interface contract.
func Print(w io.Writer, actions []search.Action) error {
	for _, a := range actions {
		act, ok := a.(model.Action)
		if !ok {
			return fmt.Errorf("%w: plan contains a non-model action", ErrInvariantViolation)
		}
		if _, err := fmt.Fprintf(w, "%s %d %d\n", act.Type.String(), act.Vehicle, act.Value); err != nil {
			return err
		}
	}

	return nil
}
