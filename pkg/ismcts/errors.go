package ismcts

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ErrIllegalMove is the sentinel wrapped by Handler.MakeMove when the
// requested move is not legal in the root state, or was never explored
// into a root child.
var ErrIllegalMove = errors.New("ismcts: illegal advance")

// workerPanic wraps a recovered panic from inside a worker's iteration
// loop, so the scoped pool can report it instead of crashing the process.
type workerPanic struct {
	workerID int
	value    any
}

func (w *workerPanic) Error() string {
	return fmt.Sprintf("ismcts: worker %d panicked: %v", w.workerID, w.value)
}

// aggregateErrors combines one error per worker (nil entries are dropped)
// into a single error, or nil if every worker succeeded.
func aggregateErrors(errs []error) error {
	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
