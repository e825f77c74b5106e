// SPDX-License-Identifier: MIT

package sampling

// Engine names reported to observers and logs.
const (
	EnginePRS    = "prs"
	EngineFilter = "bayes_filter"
	EngineGrid   = "grid_prs"
	EngineDCFTP  = "dcftp"
)

// Observer receives progress callbacks from the sampling engines.
// Implementations must be safe for concurrent use when shared across
// Parallel workers.
type Observer interface {
	// Round is called after each resampling round with the size of the
	// set that was redrawn.
	Round(engine string, round, resampled int)
	// Done is called once per returned sample with the number of rounds.
	Done(engine string, rounds int)
	// Horizon is called once per dominated CFTP sample with the final
	// backward horizon.
	Horizon(steps int)
}

// NopObserver ignores every callback.
type NopObserver struct{}

// Round implements Observer.
func (NopObserver) Round(string, int, int) {}

// Done implements Observer.
func (NopObserver) Done(string, int) {}

// Horizon implements Observer.
func (NopObserver) Horizon(int) {}
