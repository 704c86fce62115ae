package domain

import "context"

// AgentFilter narrows List results.
type AgentFilter struct {
	Enabled *bool
	Search  string
	Limit   int
	Offset  int
}

type AgentRepository interface {
	InitSchema(ctx context.Context) error

	Create(ctx context.Context, agent *Agent) error
	GetByID(ctx context.Context, id string) (*Agent, error)
	Update(ctx context.Context, agent *Agent) error
	Delete(ctx context.Context, id string) error

	// List returns agents sorted by ordering, then name.
	List(ctx context.Context, filter AgentFilter) ([]*Agent, error)
}
