// Package trial implements the repeated-trial core of the harness: the
// runner that times a single backend execution, the input policies that
// decide what each trial is fed, and the sampler that collects a fixed-size
// sample set from strictly sequential trials.
//
// # Timing discipline
//
// Trials never overlap. The runner brackets exactly one backend call with
// two clock reads and nothing else, so measured durations are comparable
// across backends. The clock is an injected interface; production code uses
// the wall clock while tests substitute a stepping fake and assert exact
// duration arithmetic (see internal/testutil).
//
// # Failure discipline
//
// A failed trial aborts the whole sample set. Statistics over a mixture of
// successful and failed trials would be misleading, so the sampler performs
// no retries and surfaces the first backend error to its caller wrapped in
// a coded HarnessError.
package trial
