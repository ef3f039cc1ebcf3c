// Package timeline converts a last-menstrual-period (LMP) date into the
// current gestational week and the developmental milestone for that week.
//
// week.go provides ComputeWeek(lmp, ref): whole calendar days between the
// two dates, floor-divided by 7 and clamped to [1, 40]. Weeks below 1
// (including an LMP in the future) are reported as week 1; the dashboard has
// no week 0. ref is always passed in so callers and tests control "today".
//
// milestone.go holds the fixed nine-row size table (Raspberry at weeks 1–8
// through Watermelon at weeks 37–40) and the "Growing beautifully!" fallback
// for weeks outside it.
//
// Everything here is a pure function; nothing is retained between calls.
package timeline
