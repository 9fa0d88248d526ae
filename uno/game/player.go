package game

// Identity is who sits at a seat. Persona feeds the reaction generator.
type Identity struct {
	Name    string
	Persona string
	Human   bool
}

type playerController struct {
	seat     int
	identity Identity
	hand     *Hand

	hasDeclared      bool
	declaredThisTurn bool
}

func newPlayerController(seat int, identity Identity) *playerController {
	return &playerController{
		seat:     seat,
		identity: identity,
		hand:     NewHand(),
	}
}

func (c *playerController) Name() string {
	return c.identity.Name
}

func (c *playerController) state() PlayerState {
	return PlayerState{
		Seat:             c.seat,
		Name:             c.identity.Name,
		Persona:          c.identity.Persona,
		Human:            c.identity.Human,
		Hand:             c.hand.Cards(),
		HandSize:         c.hand.Size(),
		HasDeclared:      c.hasDeclared,
		DeclaredThisTurn: c.declaredThisTurn,
	}
}
