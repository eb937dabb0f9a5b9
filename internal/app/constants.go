package app

// InitialDealRounds is how many times each side is dealt before the player acts.
// Cards go player, dealer, player, dealer.
const InitialDealRounds = 2

// Player-facing texts.
const (
	PromptHitOrStand    = "Enter 'dealer hit' or 'dealer stand':"
	MessageDealerReveal = "Dealer Is Revealing The Cards..."
	MessageNoGameHit    = "You must start a game with 'dealer play' to use the hit command"
	MessageNoGameStand  = "You must start a game with 'dealer play' to use the stand command"
)
