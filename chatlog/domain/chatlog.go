package domain

import (
	"context"
	"errors"
	"time"
)

// ChatMethod is how the visitor started the conversation.
type ChatMethod string

const (
	MethodDirect      ChatMethod = "direct"
	MethodModern      ChatMethod = "modern"
	MethodContactForm ChatMethod = "contact-form"
	MethodTypebot     ChatMethod = "typebot"
)

// Entry is one recorded chat start.
type Entry struct {
	ID          int64      `json:"id"`
	AgentID     string     `json:"agent_id"`
	Agent       string     `json:"agent"`
	ChatChannel string     `json:"chat_channel"`
	ChatMethod  ChatMethod `json:"chat_method"`
	IsMember    bool       `json:"is_member"`
	IP          string     `json:"ip"`
	Country     string     `json:"country"`
	ChatDate    time.Time  `json:"chat_date"`
}

type Count struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

// Report summarizes chat starts inside [From, To).
type Report struct {
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	Total      int64     `json:"total"`
	Members    int64     `json:"members"`
	PerChannel []Count   `json:"per_channel"`
	PerAgent   []Count   `json:"per_agent"`
	PerCountry []Count   `json:"per_country"`
}

var (
	ErrInvalidRetention = errors.New("retention must be \"<n>-months\" or \"forever\"")
	ErrInvalidRange     = errors.New("report range end must be after its start")
	ErrQueueFull        = errors.New("chat log queue is full")
)

type Repository interface {
	InitSchema(ctx context.Context) error
	Insert(ctx context.Context, e *Entry) error
	Report(ctx context.Context, from, to time.Time) (*Report, error)
	// DeleteBefore removes entries dated strictly before cutoff and returns how many were removed.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
