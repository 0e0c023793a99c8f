// SPDX-License-Identifier: EPL-2.0

// Package utils converts between float samples and integer PCM and holds the
// interpolation kernel shared by the resampler.
package utils
