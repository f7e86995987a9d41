package conversation

import "maleri_backend/internal/speech"

// StartConversationResponse is returned when a conversation is opened.
type StartConversationResponse struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	Step   Step   `json:"step"`
}

// MessageRequest is one typed user turn.
type MessageRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

// AudioMessageResponse couples the transcription with the dialogue reply
// so the client can show what was understood.
type AudioMessageResponse struct {
	Transcription speech.Transcription `json:"transcription"`
	Reply         Reply                `json:"reply"`
}
