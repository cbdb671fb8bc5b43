// Package dissolve implements the classic pixel-dissolve transition: a
// working image is progressively overwritten with a destination image,
// one pixel at a time, in an order that looks random but is generated
// from two integers of state.
//
// The visitation order comes from a full-cycle multiplicative generator
// modulo the Fermat prime 65537 ([Sequence]), so no pixel-index array is
// ever shuffled or stored. [Transition] paces the reveal against a fixed
// duration, pulling exactly as many indices per frame as the elapsed
// time demands.
//
// The package never touches pixel data. Hosts provide a [Swapper] that
// copies one destination pixel into the working buffer, and drive
// [Transition.Update] once per frame with the frame delta.
package dissolve
