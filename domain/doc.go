// Package domain defines the totally ordered domain that step functions
// live on, plus the thin datetime adapter that maps wall-clock instants to
// the float64 coordinates used everywhere else.
//
// Points:
//
//	Point is a tagged union NegInfinity | Finite(v) | PosInfinity with a
//	single Compare defined once. Float() lowers a Point into float64
//	(±Inf for the sentinels) so arithmetic keeps working unchanged.
//
// Dates:
//
//	The core stores datetimes as hours since Epoch (2000-01-01 UTC).
//	Config carries the UseDates flag and the *time.Location explicitly;
//	there is no package-level default to mutate.
//
// Usage:
//
//	cfg := domain.DateConfig(time.UTC)
//	h, _ := cfg.Encode("2021-03-01T12:00:00Z") // float64 hours since Epoch
//	t := cfg.Decode(h)                          // time.Time in cfg.Location
package domain
