package event

// Emitter fans a payload out to every listener, in registration order.
// Listeners run synchronously on the emitting goroutine and must not call
// back into the game that emitted the payload.
type Emitter[P any] struct {
	listeners []func(P)
}

func (e *Emitter[P]) AddListener(listener func(P)) {
	e.listeners = append(e.listeners, listener)
}

func (e *Emitter[P]) Emit(payload P) {
	for _, listener := range e.listeners {
		listener(payload)
	}
}

// Bus groups the emitters of a single game.
type Bus struct {
	FirstCardPlayed         Emitter[FirstCardPlayedPayload]
	CardPlayed              Emitter[CardPlayedPayload]
	ColorPicked             Emitter[ColorPickedPayload]
	CardsDrawn              Emitter[CardsDrawnPayload]
	PlayerPassed            Emitter[PlayerPassedPayload]
	TurnSkipped             Emitter[TurnSkippedPayload]
	DirectionReversed       Emitter[DirectionReversedPayload]
	ChallengeResolved       Emitter[ChallengeResolvedPayload]
	LastCardDeclared        Emitter[LastCardDeclaredPayload]
	MissedDeclarationCaught Emitter[MissedDeclarationCaughtPayload]
	FalseAccusation         Emitter[FalseAccusationPayload]
	GameWon                 Emitter[GameWonPayload]
}

func NewBus() *Bus {
	return &Bus{}
}
