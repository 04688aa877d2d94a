// Package design computes biquad cascade coefficients for the IIR
// filters used by the scrambler.
//
// The only topology offered is the Chebyshev Type I low/highpass pair;
// the filter bank composes a highpass and a lowpass cascade into each
// band-pass filter. Designs start from the analog prototype poles,
// scaled to the prewarped cutoff and mapped section by section through
// the bilinear transform, so the canonical 5th-order scrambler filter
// is two conjugate-pair biquads plus one real-pole first-order section.
// A design whose sections are not all strictly stable is rejected.
package design
