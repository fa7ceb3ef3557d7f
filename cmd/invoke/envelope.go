package main

import (
	"github.com/google/uuid"

	"voice-chat-skill/internal/skill/usecase"
	"voice-chat-skill/pkg/alexa"
)

func newEnvelope(req *alexa.Request) *alexa.RequestEnvelope {
	req.RequestID = "amzn1.echo-api.request." + uuid.NewString()
	req.Locale = localeFlag
	return &alexa.RequestEnvelope{
		Version: alexa.Version,
		Session: &alexa.Session{
			New:       req.Type == alexa.RequestTypeLaunch,
			SessionID: "amzn1.echo-api.session." + uuid.NewString(),
		},
		Request: req,
	}
}

func newLaunchEnvelope() *alexa.RequestEnvelope {
	return newEnvelope(&alexa.Request{Type: alexa.RequestTypeLaunch})
}

func newChatEnvelope(intent, text string) *alexa.RequestEnvelope {
	return newEnvelope(&alexa.Request{
		Type: alexa.RequestTypeIntent,
		Intent: &alexa.Intent{
			Name:               intent,
			ConfirmationStatus: alexa.ConfirmationNone,
			Slots: map[string]alexa.Slot{
				usecase.DefaultSlotName: {Name: usecase.DefaultSlotName, Value: text, ConfirmationStatus: alexa.ConfirmationNone},
			},
		},
	})
}
