package event

// Recorder subscribes to every emitter of a bus and keeps the payloads in
// the order they were emitted.
type Recorder struct {
	receivedPayloads []interface{}
}

func NewRecorder(bus *Bus) *Recorder {
	r := &Recorder{receivedPayloads: make([]interface{}, 0)}
	bus.FirstCardPlayed.AddListener(func(p FirstCardPlayedPayload) { r.record(p) })
	bus.CardPlayed.AddListener(func(p CardPlayedPayload) { r.record(p) })
	bus.ColorPicked.AddListener(func(p ColorPickedPayload) { r.record(p) })
	bus.CardsDrawn.AddListener(func(p CardsDrawnPayload) { r.record(p) })
	bus.PlayerPassed.AddListener(func(p PlayerPassedPayload) { r.record(p) })
	bus.TurnSkipped.AddListener(func(p TurnSkippedPayload) { r.record(p) })
	bus.DirectionReversed.AddListener(func(p DirectionReversedPayload) { r.record(p) })
	bus.ChallengeResolved.AddListener(func(p ChallengeResolvedPayload) { r.record(p) })
	bus.LastCardDeclared.AddListener(func(p LastCardDeclaredPayload) { r.record(p) })
	bus.MissedDeclarationCaught.AddListener(func(p MissedDeclarationCaughtPayload) { r.record(p) })
	bus.FalseAccusation.AddListener(func(p FalseAccusationPayload) { r.record(p) })
	bus.GameWon.AddListener(func(p GameWonPayload) { r.record(p) })
	return r
}

func (r *Recorder) record(payload interface{}) {
	r.receivedPayloads = append(r.receivedPayloads, payload)
}

func (r *Recorder) ReceivedPayloads() []interface{} {
	return r.receivedPayloads
}

// Last returns the most recent payload, or nil when nothing was recorded.
func (r *Recorder) Last() interface{} {
	if len(r.receivedPayloads) == 0 {
		return nil
	}
	return r.receivedPayloads[len(r.receivedPayloads)-1]
}
