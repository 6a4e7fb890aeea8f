package mc

// State is the mutable per-trial simulation state: the model's current
// observable snapshot paired with the current simulated time. Each trial
// owns exactly one State; it is created by Model.Initialize, mutated in
// place by Model.Step, and discarded when the trial's discounted value has
// been produced. States are never shared across trials.
//
// The snapshot type S is chosen by the model and is opaque to the engine;
// the engine only copies it into the trial's History at observation times.
type State[S any] struct {
	Snapshot S    // current values of the model's simulated variables
	Now      Time // current simulated time
}
