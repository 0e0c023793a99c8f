// SPDX-License-Identifier: EPL-2.0

// Package audio holds the streaming primitives used when foreign audio is
// brought into the memo format.
//
// A Source yields interleaved float32 samples in [-1,1]. Decoders in the
// formats packages produce sources; MonoMixer folds channels together and
// Resampler moves a mono stream to another rate:
//
//	src, _ := wav.Decoder{}.Decode(f)
//	mono := audio.NewMonoMixer(src)
//	rs, _ := audio.NewResampler(mono, 44100)
//
// Sources report the end of the stream with io.EOF, possibly together with
// the final samples.
//
// The Registry maps format keys to decoders so callers can pick one by file
// extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.ForPath("memo.wav")
package audio
