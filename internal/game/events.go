package game

// EventKind identifies a side effect requested by one simulation tick.
// The simulation never performs side effects itself; it reports them and
// the platform decides what to do (play a sound, log, save a score).
type EventKind int

const (
	// EventSoundFire requests the fire sound. Shots and radar pings
	// share it.
	EventSoundFire EventKind = iota

	// EventSoundHit requests the hit sound, once per destroyed rock.
	EventSoundHit

	// EventLevelUp reports that the wormhole was reached and a new wave
	// has spawned. Level carries the new level number.
	EventLevelUp

	// EventGameOver reports player death. Score and Level carry the
	// final values of the run that just ended; the state has already
	// been reset when the event is observed.
	EventGameOver
)

// Event is a single side-effect request emitted by Step.
type Event struct {
	Kind  EventKind
	Score int // final score, EventGameOver only
	Level int // new level for EventLevelUp, final level for EventGameOver
}
