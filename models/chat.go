package models

// ChatMessage is one entry in a simulated agent conversation. Held in
// memory only; transcripts do not survive the session.
type ChatMessage struct {
	MessageID      string `json:"messageId"`
	ConversationID string `json:"conversationId"`
	Content        string `json:"content"`
	IsUser         bool   `json:"isUser"`
	CreatedAt      string `json:"createdAt"`
}

// Conversation groups the simulated exchange with a listing's agent.
type Conversation struct {
	ConversationID string `json:"conversationId"`
	SessionID      string `json:"sessionId"`
	PropertyID     string `json:"propertyId"`
	PropertyTitle  string `json:"propertyTitle"`
	RealtorName    string `json:"realtorName"`
	CreatedAt      string `json:"createdAt"`
}
