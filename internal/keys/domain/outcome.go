package domain

import "time"

// Classification is the result category of a shred request.
type Classification string

const (
	// ClassificationSuccess means the key was found and wiped within the threshold.
	ClassificationSuccess Classification = "success"
	// ClassificationSlowWarning means the key was wiped but the request took
	// longer than the threshold. The wipe itself still completed.
	ClassificationSlowWarning Classification = "slow_warning"
	// ClassificationNotFound means no key was registered under the id, usually
	// because an earlier request already destroyed it.
	ClassificationNotFound Classification = "not_found"
)

// Classify derives the classification for a shred request. The threshold is
// observational: it never aborts a wipe.
func Classify(found bool, elapsed, threshold time.Duration) Classification {
	switch {
	case !found:
		return ClassificationNotFound
	case elapsed > threshold:
		return ClassificationSlowWarning
	default:
		return ClassificationSuccess
	}
}

// ShredOutcome is the immutable report of one destruction request.
type ShredOutcome struct {
	KeyID          string
	Region         string
	Found          bool
	Verified       bool // every byte equalled WipeSentinel before release
	Elapsed        time.Duration
	Classification Classification
	RequestedAt    time.Time
}

// ElapsedMicros returns the elapsed time in whole microseconds.
func (o ShredOutcome) ElapsedMicros() int64 {
	return o.Elapsed.Microseconds()
}

// ShredState is a step of the per-request shred state machine:
//
//	Idle -> Locating -> Found -> Wiping -> Removed -> Reporting -> Done
//	                 \-> NotFound ----------------/
type ShredState int

const (
	ShredStateIdle ShredState = iota
	ShredStateLocating
	ShredStateFound
	ShredStateNotFound
	ShredStateWiping
	ShredStateRemoved
	ShredStateReporting
	ShredStateDone
)

var shredStateNames = [...]string{
	ShredStateIdle:      "idle",
	ShredStateLocating:  "locating",
	ShredStateFound:     "found",
	ShredStateNotFound:  "not_found",
	ShredStateWiping:    "wiping",
	ShredStateRemoved:   "removed",
	ShredStateReporting: "reporting",
	ShredStateDone:      "done",
}

func (s ShredState) String() string {
	if s < 0 || int(s) >= len(shredStateNames) {
		return "unknown"
	}
	return shredStateNames[s]
}

// CanTransition reports whether next is a legal successor of s.
func (s ShredState) CanTransition(next ShredState) bool {
	switch s {
	case ShredStateIdle:
		return next == ShredStateLocating
	case ShredStateLocating:
		return next == ShredStateFound || next == ShredStateNotFound
	case ShredStateFound:
		return next == ShredStateWiping
	case ShredStateWiping:
		return next == ShredStateRemoved
	case ShredStateRemoved, ShredStateNotFound:
		return next == ShredStateReporting
	case ShredStateReporting:
		return next == ShredStateDone
	default:
		return false
	}
}
