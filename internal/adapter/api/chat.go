package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// ListMessages returns the full ordered message list of a conversation.
func (c *Client) ListMessages(ctx context.Context, conversationID domain.ID) ([]domain.Message, error) {
	var msgs []domain.Message
	if err := c.do(ctx, "list messages", http.MethodGet, "/chat/post/"+url.PathEscape(conversationID.String()), nil, &msgs); err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return msgs, nil
}

// CreateMessage posts a new message and returns the server's copy.
func (c *Client) CreateMessage(ctx context.Context, in domain.MessageInput) (*domain.Message, error) {
	var msg domain.Message
	if err := c.do(ctx, "create message", http.MethodPost, "/chat", in, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// UpdateMessage replaces the body of an existing message.
func (c *Client) UpdateMessage(ctx context.Context, id domain.ID, in domain.MessageInput) (*domain.Message, error) {
	var msg domain.Message
	if err := c.do(ctx, "update message", http.MethodPut, "/chat/"+url.PathEscape(id.String()), in, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DeleteMessage removes a message.
func (c *Client) DeleteMessage(ctx context.Context, id domain.ID) error {
	return c.do(ctx, "delete message", http.MethodDelete, "/chat/"+url.PathEscape(id.String()), nil, nil)
}
