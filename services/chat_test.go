package services

import (
	"sync"
	"testing"
	"time"

	"nestify_server/models"
)

type recordingNotifier struct {
	mu     sync.Mutex
	rooms  []string
	events []string
}

func (n *recordingNotifier) BroadcastToRoom(namespace, room, event string, args ...interface{}) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rooms = append(n.rooms, room)
	n.events = append(n.events, event)
	return true
}

func seedConversation(cs *ChatService, sessionID, conversationID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.conversations[conversationID] = &conversationState{
		info: models.Conversation{
			ConversationID: conversationID,
			SessionID:      sessionID,
			PropertyID:     "prop-1",
			PropertyTitle:  "Lakeside Cabin",
		},
	}
}

func waitForMessages(t *testing.T, cs *ChatService, conversationID string, want int) []models.ChatMessage {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for {
		transcript, err := cs.Messages(conversationID)
		if err != nil {
			t.Fatalf("Messages() error: %v", err)
		}
		if len(transcript) >= want {
			return transcript
		}
		if time.Now().After(deadline) {
			t.Fatalf("transcript stuck at %d messages, want %d", len(transcript), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSendMessageAppendsCannedReply(t *testing.T) {
	notifier := &recordingNotifier{}
	cs := NewChatService(nil, notifier)
	cs.Delay = 10 * time.Millisecond
	seedConversation(cs, "session-1", "conv-1")

	message, err := cs.SendMessage("conv-1", "Does it have a dock?")
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if !message.IsUser {
		t.Error("user message should be flagged IsUser")
	}

	// The user's message lands immediately; the reply only after the delay.
	transcript, _ := cs.Messages("conv-1")
	if len(transcript) != 1 {
		t.Fatalf("transcript has %d messages before reply, want 1", len(transcript))
	}

	transcript = waitForMessages(t, cs, "conv-1", 2)
	reply := transcript[len(transcript)-1]
	if reply.IsUser {
		t.Error("reply should come from the agent")
	}

	known := false
	for _, canned := range agentReplies {
		if reply.Content == canned {
			known = true
			break
		}
	}
	if !known {
		t.Errorf("reply %q is not one of the canned responses", reply.Content)
	}

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.rooms) != 1 || notifier.rooms[0] != "conv-1" {
		t.Errorf("reply broadcast rooms = %v, want [conv-1]", notifier.rooms)
	}
	if notifier.events[0] != "newMessage" {
		t.Errorf("broadcast event = %q, want newMessage", notifier.events[0])
	}
}

func TestSendMessageUnknownConversation(t *testing.T) {
	cs := NewChatService(nil, nil)
	if _, err := cs.SendMessage("missing", "hello"); err == nil {
		t.Error("expected error for unknown conversation")
	}
}

func TestDropSessionDiscardsTranscripts(t *testing.T) {
	cs := NewChatService(nil, nil)
	seedConversation(cs, "session-1", "conv-1")
	seedConversation(cs, "session-2", "conv-2")

	cs.DropSession("session-1")

	if _, err := cs.Messages("conv-1"); err == nil {
		t.Error("conv-1 should be gone with its session")
	}
	if _, err := cs.Messages("conv-2"); err != nil {
		t.Errorf("conv-2 should survive, got error: %v", err)
	}
}
