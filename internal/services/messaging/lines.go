package messaging

import "github.com/KirkDiggler/kostka/internal/services/opponent"

// opponentLines is keyed by opponent, then situation. Every opponent_bust line takes the player's name.
var opponentLines = map[opponent.Personality]map[Situation][]string{
	opponent.PersonalityCautious: {
		SituationTurnStart: {
			"Slowly now. A small sure thing beats a big maybe.",
			"Let me just check the dice aren't loaded... fine, rolling.",
			"Careful hands, careful points.",
		},
		SituationBust: {
			"I knew I should have stayed home today.",
			"Nothing? Not even a single five? Typical.",
			"And this is why I never trust the second roll.",
		},
		SituationHotDice: {
			"All six? Oh dear, now I have to roll them all again.",
			"Hot dice. My heart can't take this.",
		},
		SituationBank: {
			"I'll keep these, thank you very much.",
			"Into the pocket they go.",
			"Safe and sound.",
		},
		SituationStop: {
			"That's plenty for me. Writing it down.",
			"A bird in the hand, as they say.",
			"I'm stopping before the dice change their mind.",
		},
		SituationWin: {
			"Slow and steady! I told you all.",
			"Patience wins again. Who would have thought.",
		},
		SituationOpponentBust: {
			"Oh %s, you should have stopped. I did warn you.",
			"That's what greed gets you, %s.",
			"Poor %s. Small steps next time.",
		},
	},
	opponent.PersonalityBalanced: {
		SituationTurnStart: {
			"Right, let's see what the odds give us.",
			"Six dice, plenty of chances. Rolling.",
			"A reasonable roll for a reasonable player.",
		},
		SituationBust: {
			"Statistically that was always possible. Still annoying.",
			"Well, the numbers weren't with me that time.",
			"Bust. I'll recalculate.",
		},
		SituationHotDice: {
			"Hot dice! The maths just got a lot better.",
			"All six scored. Back to a full hand.",
		},
		SituationBank: {
			"Those are worth keeping.",
			"A sensible selection.",
			"Banked. Let's weigh the next step.",
		},
		SituationStop: {
			"Few dice left, good score. I'll stop here.",
			"The expected value says stop.",
			"That's a fair turn. Done.",
		},
		SituationWin: {
			"Balance wins the day.",
			"Neither too bold nor too timid. Game.",
		},
		SituationOpponentBust: {
			"Unlucky, %s, but the odds were against you.",
			"%s, that one was a coin flip you lost.",
			"Bad timing, %s. It happens to everyone.",
		},
	},
	opponent.PersonalityReckless: {
		SituationTurnStart: {
			"Stand back, I'm going big!",
			"Nobody stops before a thousand. Nobody!",
			"Let's make this interesting.",
		},
		SituationBust: {
			"Worth it! Totally worth it.",
			"Bust? Whatever, next turn I'm rolling even harder.",
			"The dice fear me, they just don't show it yet.",
		},
		SituationHotDice: {
			"HOT DICE! Give me all six again!",
			"All of them scored! Again, again!",
		},
		SituationBank: {
			"Keep those, roll the rest, no hesitation.",
			"Just a warm-up.",
			"More, I need more.",
		},
		SituationStop: {
			"Fine, fine, I'll take the big points.",
			"A thousand in one turn. Beat that.",
			"Stopping only because I'm that good.",
		},
		SituationWin: {
			"Fortune favours the bold!",
			"Who said risk doesn't pay?",
		},
		SituationOpponentBust: {
			"Ha! %s, you should have rolled harder.",
			"Bust, %s? Amateur.",
			"%s, welcome to my world.",
		},
	},
}

var errorMessages = map[ErrorType][]string{
	ErrorTypeNotYourTurn: {
		"Patience! It's not your turn yet.",
		"Hold your horses, someone else is rolling.",
	},
	ErrorTypeNoGame: {
		"You don't have a game running. Start one with /kostka start.",
		"No game found. Try /kostka start.",
	},
	ErrorTypeGameExists: {
		"You already have a game going. Finish it or /kostka quit first.",
	},
	ErrorTypeGameOver: {
		"This game is over. Start a new one with /kostka start.",
	},
	ErrorTypeInvalidSelection: {
		"Those dice don't score. 1s and 5s count alone, everything else needs three of a kind.",
		"That selection isn't valid. Pick only scoring dice.",
	},
	ErrorTypeHotDiceMustRoll: {
		"You must roll again after Hot Dice!",
		"Hot Dice! All six go back in, you have to roll.",
	},
	ErrorTypeMustBank: {
		"Set aside at least one scoring die first.",
		"Pick the dice you want to keep before doing that.",
	},
	ErrorTypeMustRoll: {
		"Roll the dice first!",
		"Nothing on the table yet, roll first.",
	},
	ErrorTypeBusy: {
		"Easy there, that click raced another one. Look at the board and try again.",
	},
	ErrorTypeUnknown: {
		"Something went wrong! Try again.",
		"Oops! The dice got confused. Try again.",
	},
}
