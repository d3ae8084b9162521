package redis

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"

	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

type redisSource struct {
	client *redis.Client
	key    string
}

// New returns a task store backed by a Redis list at key. Every list item is
// one JSON-encoded task.
func New(client *redis.Client, key string) teambubbles.TaskStore {
	return &redisSource{
		client: client,
		key:    key,
	}
}

func (r *redisSource) Tasks(ctx context.Context) ([]teambubbles.Task, error) {
	if r.client == nil {
		return nil, teambubbles.ErrClosed
	}

	items, err := r.client.WithContext(ctx).LRange(r.key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []teambubbles.Task{}, nil
		}

		return nil, errors.Wrapf(err, "failed to read tasks from %v", r.key)
	}

	result := make([]teambubbles.Task, 0, len(items))
	for i, item := range items {
		var task teambubbles.Task
		if err := json.Unmarshal([]byte(item), &task); err != nil {
			return nil, errors.Wrapf(teambubbles.ErrInvalidTask, "item %d of %v: %v", i, r.key, err)
		}
		result = append(result, task)
	}

	return result, nil
}

func (r *redisSource) Append(ctx context.Context, tasks ...teambubbles.Task) error {
	if r.client == nil {
		return teambubbles.ErrClosed
	}

	if len(tasks) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(tasks))
	for _, task := range tasks {
		data, err := json.Marshal(task)
		if err != nil {
			return errors.Wrapf(teambubbles.ErrInvalidTask, "task %v: %v", task.ID, err)
		}
		values = append(values, data)
	}

	return r.client.WithContext(ctx).RPush(r.key, values...).Err()
}

func (r *redisSource) Close() error {
	if r.client != nil {
		err := r.client.Close()
		r.client = nil

		return err
	}

	return nil
}
