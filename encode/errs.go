package encode

import "errors"

// ErrNonFinite is returned when a NaN or ±Inf float64 reaches the emitter.
// JSON has no literal for either; silently degrading to "null" would change
// the value's meaning without telling the caller, so the emitter refuses
// instead, matching spec.md §9's decision for this open question.
var ErrNonFinite = errors.New("encode: NaN or Inf has no JSON representation")
