// Package media reads playback duration from downloaded audio files.
//
// MP3 duration is the sum of all MPEG frame durations; M4A duration comes
// from the movie header (mvhd) box. Files of any other type are reported as
// unsupported and left alone.
package media
