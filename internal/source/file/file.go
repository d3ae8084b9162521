package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

type fileSource struct {
	path string
}

// New returns a task source reading a JSON or YAML array of tasks from path.
// The file is read again on every call.
func New(path string) teambubbles.TaskSource {
	return &fileSource{path: path}
}

func (f *fileSource) Tasks(ctx context.Context) ([]teambubbles.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(teambubbles.ErrNotFound, "tasks file %v", f.path)
		}

		return nil, errors.Wrapf(err, "failed to read tasks file %v", f.path)
	}

	return Decode(f.path, data)
}

func (f *fileSource) Close() error {
	return nil
}

// Decode parses data as JSON or YAML depending on the extension of name.
func Decode(name string, data []byte) ([]teambubbles.Task, error) {
	var (
		tasks []teambubbles.Task
		err   error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &tasks)

	default:
		err = json.Unmarshal(data, &tasks)
	}

	if err != nil {
		return nil, errors.Wrapf(teambubbles.ErrInvalidTask, "%v: %v", name, err)
	}

	if tasks == nil {
		tasks = []teambubbles.Task{}
	}

	return tasks, nil
}
