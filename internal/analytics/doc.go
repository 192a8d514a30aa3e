// Package analytics derives study statistics from a user's tasks and progress
// log: the current and longest study streak, a 0-100 productivity score, task
// completion rates and study-time breakdowns. Every function is a pure
// computation over data the caller already fetched.
package analytics
