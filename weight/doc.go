// Package weight provides the weight type and the registration-name grammar
// for the weighted emitter.
//
// # Name Format
//
// A registration name is an event key with an optional weight suffix:
//
//	deploy             key "deploy", default weight (Bottom)
//	deploy.9           key "deploy", weight 9
//	deploy.-2          key "deploy", weight -2
//	deploy.1.5         key "deploy", weight 1.5
//	deploy.Infinity    key "deploy", weight Top
//	deploy.retry       key "deploy.retry", default weight (opaque key)
//
// A suffix that does not parse as a numeral is not an error: the separator
// becomes part of the key and the listener lands at the default weight.
// Names with two separators must form key.I.F; anything deeper is rejected.
//
// # Ordering
//
// Weights are float64 values plus the two infinity sentinels. Delivery order
// is descending: Top first, then finite weights, then Bottom. The grammar
// cannot produce NaN, so the order is total by construction.
package weight
