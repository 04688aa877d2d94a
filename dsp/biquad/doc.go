// Package biquad implements second-order IIR filter sections (biquads)
// and cascades of them.
//
// A [Section] processes audio through the Direct Form II Transposed
// structure; a [Chain] runs several sections in series to realize
// higher-order filters such as the Chebyshev designs used by the
// scrambler's filter bank. Sections are value objects with explicit
// delay-line state: a freshly constructed Section or Chain always
// starts from zero state, which the scrambling pipeline relies on to
// keep filter state from leaking across time segments.
package biquad
