package infrastructure

import (
	"context"
	"strings"

	"github.com/AzielCF/az-chatbox/infrastructure/valkey"
)

// ValkeySettingsRepository keeps every setting as a field of a single hash.
type ValkeySettingsRepository struct {
	client *valkey.Client
	key    string
}

func NewValkeySettingsRepository(client *valkey.Client) *ValkeySettingsRepository {
	return &ValkeySettingsRepository{client: client, key: client.Key("settings")}
}

// InitSchema is a no-op; hashes are created on first write.
func (r *ValkeySettingsRepository) InitSchema(ctx context.Context) error {
	return r.client.Ping(ctx)
}

func (r *ValkeySettingsRepository) Get(ctx context.Context, key string) (string, error) {
	inner := r.client.Inner()
	val, err := inner.Do(ctx, inner.B().Hget().Key(r.key).Field(key).Build()).ToString()
	if err != nil {
		if valkey.IsNil(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(val), nil
}

func (r *ValkeySettingsRepository) Set(ctx context.Context, key string, value string) error {
	inner := r.client.Inner()
	return inner.Do(ctx, inner.B().Hset().Key(r.key).FieldValue().FieldValue(key, value).Build()).Error()
}

// SetMany writes every field with one HSET, which Valkey applies atomically.
func (r *ValkeySettingsRepository) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	inner := r.client.Inner()
	cmd := inner.B().Hset().Key(r.key).FieldValue()
	for k, v := range values {
		cmd = cmd.FieldValue(k, v)
	}
	return inner.Do(ctx, cmd.Build()).Error()
}

func (r *ValkeySettingsRepository) Delete(ctx context.Context, key string) error {
	inner := r.client.Inner()
	return inner.Do(ctx, inner.B().Hdel().Key(r.key).Field(key).Build()).Error()
}

func (r *ValkeySettingsRepository) List(ctx context.Context) (map[string]string, error) {
	inner := r.client.Inner()
	values, err := inner.Do(ctx, inner.B().Hgetall().Key(r.key).Build()).AsStrMap()
	if err != nil {
		if valkey.IsNil(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	for k, v := range values {
		values[k] = strings.TrimSpace(v)
	}
	return values, nil
}
