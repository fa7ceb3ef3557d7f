package alexa

// Envelope version sent back to the platform.
const Version = "1.0"

// Request types.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Built-in intents.
const (
	IntentHelp     = "AMAZON.HelpIntent"
	IntentCancel   = "AMAZON.CancelIntent"
	IntentStop     = "AMAZON.StopIntent"
	IntentFallback = "AMAZON.FallbackIntent"
)

const (
	ConfirmationNone = "NONE"

	OutputSpeechPlainText = "PlainText"

	DirectiveElicitSlot = "Dialog.ElicitSlot"
)
