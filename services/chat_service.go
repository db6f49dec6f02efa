package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"nestify_server/models"
	"nestify_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// agentReplies are the canned responses the simulated agent picks from.
var agentReplies = []string{
	"I'll check on that for you right away!",
	"Great question! Let me get back to you with more details.",
	"That's definitely possible. Let me see what we can arrange.",
	"I understand your concern. The property has excellent features that address that.",
	"Would you like me to send you some additional photos of that area?",
}

// ReplyDelay is the simulated typing time before the agent's reply lands.
// A pacing decision, not a computation cost.
const ReplyDelay = 1500 * time.Millisecond

// ReplyNotifier pushes simulated replies to connected clients. The
// socket.io server satisfies it.
type ReplyNotifier interface {
	BroadcastToRoom(namespace string, room string, event string, args ...interface{}) bool
}

// ChatService simulates conversations with listing agents. Nothing here is
// a real messaging system: transcripts live in memory for the current
// session and replies are canned.
type ChatService struct {
	Dynamo   *DynamoService
	Notifier ReplyNotifier

	// Delay overrides ReplyDelay when non-zero. Tests shorten it.
	Delay time.Duration

	mu            sync.Mutex
	conversations map[string]*conversationState
}

type conversationState struct {
	info     models.Conversation
	messages []models.ChatMessage
}

// NewChatService creates the simulator with an empty transcript store.
func NewChatService(dynamo *DynamoService, notifier ReplyNotifier) *ChatService {
	return &ChatService{
		Dynamo:        dynamo,
		Notifier:      notifier,
		conversations: make(map[string]*conversationState),
	}
}

// StartConversation opens a simulated conversation about a listing, seeded
// with the opening exchange: the user's interest message and the agent's
// greeting.
func (cs *ChatService) StartConversation(ctx context.Context, sessionID, propertyID string) (models.Conversation, []models.ChatMessage, error) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: propertyID},
	}
	item, err := cs.Dynamo.GetItem(ctx, models.PropertiesTable, key)
	if err != nil {
		return models.Conversation{}, nil, fmt.Errorf("failed to fetch property: %w", err)
	}

	var property models.Property
	if err := attributevalue.UnmarshalMap(item, &property); err != nil {
		return models.Conversation{}, nil, fmt.Errorf("failed to parse property: %w", err)
	}

	agentName := property.RealtorName
	if agentName == "" {
		agentName = "your dedicated agent"
	}

	now := time.Now().UTC()
	conversation := models.Conversation{
		ConversationID: uuid.NewString(),
		SessionID:      sessionID,
		PropertyID:     property.ID,
		PropertyTitle:  property.Title,
		RealtorName:    property.RealtorName,
		CreatedAt:      now.Format(time.RFC3339),
	}

	opening := []models.ChatMessage{
		{
			MessageID:      uuid.NewString(),
			ConversationID: conversation.ConversationID,
			Content:        fmt.Sprintf("Hi! I'm interested in %q listed at %s. Is it still available?", property.Title, utils.FormatPrice(property.Price)),
			IsUser:         true,
			CreatedAt:      now.Format(time.RFC3339),
		},
		{
			MessageID:      uuid.NewString(),
			ConversationID: conversation.ConversationID,
			Content:        fmt.Sprintf("Hello! Yes, %s is still available! I'm %s. How can I help you today?", property.Title, agentName),
			IsUser:         false,
			CreatedAt:      now.Add(time.Second).Format(time.RFC3339),
		},
	}

	cs.mu.Lock()
	cs.conversations[conversation.ConversationID] = &conversationState{
		info:     conversation,
		messages: opening,
	}
	cs.mu.Unlock()

	return conversation, opening, nil
}

// SendMessage appends the user's message immediately and schedules one
// canned agent reply after the typing delay. The reply is appended to the
// transcript and broadcast to the conversation's socket room.
func (cs *ChatService) SendMessage(conversationID, content string) (models.ChatMessage, error) {
	message := models.ChatMessage{
		MessageID:      uuid.NewString(),
		ConversationID: conversationID,
		Content:        content,
		IsUser:         true,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	cs.mu.Lock()
	state, ok := cs.conversations[conversationID]
	if !ok {
		cs.mu.Unlock()
		return models.ChatMessage{}, errors.New("conversation not found")
	}
	state.messages = append(state.messages, message)
	cs.mu.Unlock()

	delay := cs.Delay
	if delay == 0 {
		delay = ReplyDelay
	}
	time.AfterFunc(delay, func() { cs.appendAgentReply(conversationID) })

	return message, nil
}

func (cs *ChatService) appendAgentReply(conversationID string) {
	reply := models.ChatMessage{
		MessageID:      uuid.NewString(),
		ConversationID: conversationID,
		Content:        agentReplies[rand.Intn(len(agentReplies))],
		IsUser:         false,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	cs.mu.Lock()
	state, ok := cs.conversations[conversationID]
	if ok {
		state.messages = append(state.messages, reply)
	}
	cs.mu.Unlock()

	// Conversation may have been dropped while the agent was "typing".
	if !ok {
		return
	}

	if cs.Notifier != nil {
		cs.Notifier.BroadcastToRoom("/", conversationID, "newMessage", reply)
	}
}

// Messages returns the transcript for a conversation.
func (cs *ChatService) Messages(conversationID string) ([]models.ChatMessage, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	state, ok := cs.conversations[conversationID]
	if !ok {
		return nil, errors.New("conversation not found")
	}
	transcript := make([]models.ChatMessage, len(state.messages))
	copy(transcript, state.messages)
	return transcript, nil
}

// DropSession discards every conversation a session opened. Called at
// sign-out; transcripts never outlive the session.
func (cs *ChatService) DropSession(sessionID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for id, state := range cs.conversations {
		if state.info.SessionID == sessionID {
			delete(cs.conversations, id)
		}
	}
}
