package mercenary

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/errors"
	redisclient "github.com/KirkDiggler/mercdex/internal/redis"
)

const (
	mercenaryKeyPrefix = "mercenary:"
	indexKey           = "mercenary:index"
	filtersKey         = "mercenary:filters"

	// Error messages
	errNameEmpty     = "mercenary name cannot be empty"
	errMercenaryNil  = "mercenary cannot be nil"
	errSaveInputNil  = "save input cannot be nil"
	errFiltersAbsent = "filter options not seeded"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the redis-backed repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a repository backed by a redis dataset cache
func NewRedis(cfg *RedisConfig) (ReadWriter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func mercenaryKey(name string) string {
	return mercenaryKeyPrefix + name
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errSaveInputNil)
	}

	payloads := make(map[string][]byte, len(input.Mercenaries))
	names := make([]string, 0, len(input.Mercenaries))
	for _, m := range input.Mercenaries {
		if m == nil {
			return nil, errors.InvalidArgument(errMercenaryNil)
		}
		if m.Name == "" {
			return nil, errors.InvalidArgument(errNameEmpty)
		}
		if _, dup := payloads[m.Name]; dup {
			continue
		}
		data, err := json.Marshal(m)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal mercenary %s", m.Name)
		}
		payloads[m.Name] = data
		names = append(names, m.Name)
	}

	filterFields := make([]any, 0, len(input.Options)*2)
	for key, values := range input.Options {
		data, err := json.Marshal(values)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal filter options for %s", key)
		}
		filterFields = append(filterFields, string(key), data)
	}

	previous, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read mercenary index")
	}

	pipe := r.client.TxPipeline()

	for _, name := range previous {
		pipe.Del(ctx, mercenaryKey(name))
	}
	pipe.Del(ctx, indexKey, filtersKey)

	for _, name := range names {
		pipe.Set(ctx, mercenaryKey(name), payloads[name], 0)
	}
	if len(names) > 0 {
		members := make([]any, len(names))
		for i, name := range names {
			members[i] = name
		}
		pipe.SAdd(ctx, indexKey, members...)
	}
	if len(filterFields) > 0 {
		pipe.HSet(ctx, filtersKey, filterFields...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to save dataset")
	}

	slog.InfoContext(ctx, "seeded mercenary dataset",
		"mercenaries", len(names),
		"replaced", len(previous),
		"filter_keys", len(input.Options))

	return &SaveOutput{Saved: len(names)}, nil
}

func (r *redisRepository) ListMercenaries(
	ctx context.Context,
	_ *ListMercenariesInput,
) (*ListMercenariesOutput, error) {
	names, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read mercenary index")
	}
	sort.Strings(names)

	slog.DebugContext(ctx, "found mercenaries in index",
		"index_key", indexKey,
		"count", len(names))

	if len(names) == 0 {
		return &ListMercenariesOutput{Mercenaries: []*entities.Mercenary{}}, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = mercenaryKey(name)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read mercenaries")
	}

	mercs := make([]*entities.Mercenary, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			slog.WarnContext(ctx, "mercenary missing, cleaning up index",
				"name", names[i],
				"index_key", indexKey)
			r.client.SRem(ctx, indexKey, names[i])
			continue
		}

		m, err := decodeMercenary(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode mercenary %s", names[i])
		}
		mercs = append(mercs, m)
	}

	return &ListMercenariesOutput{Mercenaries: mercs}, nil
}

func (r *redisRepository) GetMercenary(ctx context.Context, input *GetMercenaryInput) (*GetMercenaryOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	raw, err := r.client.Get(ctx, mercenaryKey(input.Name)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("mercenary %q not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get mercenary %s", input.Name)
	}

	m, err := decodeMercenary(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode mercenary %s", input.Name)
	}

	return &GetMercenaryOutput{Mercenary: m}, nil
}

func (r *redisRepository) GetFilterOptions(
	ctx context.Context,
	_ *GetFilterOptionsInput,
) (*GetFilterOptionsOutput, error) {
	fields, err := r.client.HGetAll(ctx, filtersKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read filter options")
	}
	if len(fields) == 0 {
		return nil, errors.NotFound(errFiltersAbsent)
	}

	opts := make(entities.FilterOptions, len(fields))
	for field, raw := range fields {
		key, err := entities.ParseFilterKey(field)
		if err != nil {
			return nil, errors.Wrap(err, "stored filter options are invalid")
		}

		var values []string
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "stored filter options for %s are malformed", field)
		}
		opts[key] = values
	}

	return &GetFilterOptionsOutput{Options: opts}, nil
}

func decodeMercenary(raw string) (*entities.Mercenary, error) {
	var m entities.Mercenary
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "stored mercenary is malformed")
	}
	return &m, nil
}
