// Package bank builds the scrambler's band-splitting filter bank.
//
// A bank partitions the usable spectrum (0, Nyquist] into n contiguous,
// non-overlapping equal-width bands. Each band is a 5th-order Chebyshev
// Type I band-pass with 4 dB passband ripple, realized as a highpass at
// the band's lower edge cascaded with a lowpass at its upper edge.
//
// Band edges follow the classic analog scrambler layout: band b spans
// [previous upper edge, (b+1)*step - 1] Hz with step = floor(Nyquist/n),
// the first band starting at 1 Hz to stay clear of DC.
//
// Bands hold coefficients only. [Bank.Chains] hands out freshly
// constructed zero-state cascades so each time segment is filtered
// without state leaking in from the previous one.
package bank
