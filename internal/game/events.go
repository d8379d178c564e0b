package game

import "time"

// EventType identifies a game event.
type EventType string

const (
	EventTypeCaseChosen EventType = "case_chosen"
	EventTypeRoundStart EventType = "round_start"
	EventTypeCaseOpened EventType = "case_opened"
	EventTypeOffer      EventType = "offer"
	EventTypeDecision   EventType = "decision"
	EventTypeGameOver   EventType = "game_over"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent is anything the engine reports while a game runs.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// Observer receives events in the order they happen.
type Observer interface {
	OnEvent(GameEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(GameEvent)

func (f ObserverFunc) OnEvent(e GameEvent) { f(e) }

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) OnEvent(GameEvent) {}

// CaseChosenEvent is published once the player's case is fixed.
type CaseChosenEvent struct {
	PlayerCase int
	timestamp  time.Time
}

func (e CaseChosenEvent) EventType() EventType { return EventTypeCaseChosen }
func (e CaseChosenEvent) Timestamp() time.Time { return e.timestamp }

// RoundStartEvent is published before a batch is selected.
type RoundStartEvent struct {
	State       State
	CasesToOpen int
	timestamp   time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// CaseOpenedEvent reveals one case.
type CaseOpenedEvent struct {
	Round     int
	Case      int
	Value     float64
	timestamp time.Time
}

func (e CaseOpenedEvent) EventType() EventType { return EventTypeCaseOpened }
func (e CaseOpenedEvent) Timestamp() time.Time { return e.timestamp }

// OfferEvent carries the bank's offer for a round.
type OfferEvent struct {
	State     State
	Offer     float64
	timestamp time.Time
}

func (e OfferEvent) EventType() EventType { return EventTypeOffer }
func (e OfferEvent) Timestamp() time.Time { return e.timestamp }

// DecisionEvent records deal or no deal.
type DecisionEvent struct {
	Round     int
	Offer     float64
	Accepted  bool
	timestamp time.Time
}

func (e DecisionEvent) EventType() EventType { return EventTypeDecision }
func (e DecisionEvent) Timestamp() time.Time { return e.timestamp }

// GameOverEvent is the last event of a game.
type GameOverEvent struct {
	Result    Result
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }
