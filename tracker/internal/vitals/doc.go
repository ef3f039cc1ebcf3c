// Package vitals builds validated VitalsReading values and keeps the
// append-only reading history owned by one session.
package vitals
