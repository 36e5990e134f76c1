// Package key provides keyboard types for the plot viewer: modifier
// bitmasks, a small key set, and Combo, a combined modifier+key value
// used to arm constrained zoom gestures.
package key
