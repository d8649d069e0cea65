package console

// Textos fijos de la conversación.

var greetingLines = []string{
	"|  reeeOWWW!              |",
	"|                         |",
	"|  How's it going today? I'm doing well, and I want to help.  |",
}

var artLines = []string{
	`|                           |`,
	`|        /\  /\             |`,
	`|       = ^ . ^ =           |`,
	`|       \      /            |`,
	`|   *  /      \             |`,
	`| ||  |        \            |`,
	`|  \\ |   \\   \\           |`,
	`|   \\/____\\_ _\\          |`,
	`|___________________________|`,
	``,
}

var menuLines = []string{
	"|  I'm always hungry if you'd like to *feed* me. We could also play a *game*!   |",
	"|  Hoping for something more useful? Check out my *tools*                       |",
	"|  I could also use a nice nap if you'd like to *quit* for now.                 |",
	"|  Please type on option to continue:                                           |",
	"|  *feed*    *game*    *tools*   *quit*   *status*                              |",
}

const (
	fedLineFormat = "*You fed %s his favorite meal*"
	fedReaction   = "RrrOWWooWWW! My strength is returning! Soon I'm sure I'll be able to help you out"

	gameIntro      = "I'm thinking of a number, can you guess what it is?"
	guessPrompt    = "Enter a guess, please:"
	guessedFormat  = "You guessed: %d"
	tooSmallLine   = "Too small!"
	tooBigLine     = "Too big!"
	gameOutroLine  = "..."
	gameOutroCount = 3

	labIntro      = "Reee-OW, welcome to my lab! Here are some helpful things I can do:"
	labConvert    = "1. Convert temperatures"
	unitQuestion  = "Is your temperature in Fahrenheit or Celsius?"
	unitChoiceF   = "1. Fahrenheit"
	unitChoiceC   = "2. Celsius"
	tempPrompt    = "Please enter your %s temperature in the form of an integer:"
	convertFormat = "%s %s = %s %s"

	happinessFormat = "Happiness: %d"
	stomachFormat   = "Stomach %s%% full"

	farewell = "See you next time friendo!"

	unrecognizedFormat = "You chose to: %s"
	unrecognizedReply  = "Rrr... not sure what to do with that. Let's try something else"
)
