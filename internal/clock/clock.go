// Package clock reads the wall clock as floating-point seconds for coarse timing logs.
package clock

import "time"

// origin pins the wall clock once; later readings advance it with the monotonic
// clock so a system time change cannot make Seconds run backwards.
var origin = time.Now()

// Seconds returns the current time as seconds since the Unix epoch, with
// millisecond resolution. Clocks set before the epoch read as 0.
func Seconds() float64 {
	return seconds(origin.Add(time.Since(origin)))
}

// Since returns the seconds elapsed since a previous Seconds reading.
func Since(start float64) float64 {
	return Seconds() - start
}

func seconds(t time.Time) float64 {
	ms := t.UnixMilli()
	if ms < 0 {
		return 0
	}
	return float64(ms/1000) + float64(ms%1000)/1000.0
}
