package alexa

// ResponseBuilder assembles a ResponseEnvelope.
type ResponseBuilder struct {
	resp Response
}

func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{}
}

// Speak sets the plain-text speech. Empty text is ignored.
func (b *ResponseBuilder) Speak(text string) *ResponseBuilder {
	if text != "" {
		b.resp.OutputSpeech = &OutputSpeech{Type: OutputSpeechPlainText, Text: text}
	}
	return b
}

// Reprompt sets the reprompt text and keeps the session open.
func (b *ResponseBuilder) Reprompt(text string) *ResponseBuilder {
	if text == "" {
		return b
	}
	b.resp.Reprompt = &Reprompt{OutputSpeech: OutputSpeech{Type: OutputSpeechPlainText, Text: text}}
	return b.WithShouldEndSession(false)
}

// ElicitSlot asks the platform to collect slot of intent on the next turn.
// The slot is sent back with an empty value so the user's next utterance fills it.
func (b *ResponseBuilder) ElicitSlot(slot, intent string) *ResponseBuilder {
	b.resp.Directives = append(b.resp.Directives, Directive{
		Type:         DirectiveElicitSlot,
		SlotToElicit: slot,
		UpdatedIntent: &Intent{
			Name:               intent,
			ConfirmationStatus: ConfirmationNone,
			Slots: map[string]Slot{
				slot: {Name: slot, Value: "", ConfirmationStatus: ConfirmationNone},
			},
		},
	})
	return b
}

func (b *ResponseBuilder) WithShouldEndSession(end bool) *ResponseBuilder {
	b.resp.ShouldEndSession = &end
	return b
}

// Build returns the envelope.
func (b *ResponseBuilder) Build() *ResponseEnvelope {
	return &ResponseEnvelope{
		Version:  Version,
		Response: b.resp,
	}
}
