package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/cafebazaar/teambubbles/internal/source/file"
	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTasksShouldReadJSON(t *testing.T) {
	path := writeFile(t, "tasks.json", `[
		{"id": "1", "teams": ["Alpha", "Beta"], "votes": [{"voterId": "a"}, {"voterId": "b"}]},
		{"id": "2", "teams": ["Alpha"], "votes": [{"voterId": "a"}]}
	]`)

	tasks, err := file.New(path).Tasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, []string{"Alpha", "Beta"}, tasks[0].Teams)
	require.Equal(t, 2, tasks[0].VoteCount())
}

func TestTasksShouldReadYAML(t *testing.T) {
	path := writeFile(t, "tasks.yml", `
- id: "1"
  title: Faster builds
  teams: [Platform]
  votes:
    - voterId: a
    - voterId: b
- id: "2"
  votes: []
`)

	tasks, err := file.New(path).Tasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "Faster builds", tasks[0].Title)
	require.Equal(t, 2, tasks[0].VoteCount())
	require.Empty(t, tasks[1].Teams)
}

func TestDecodeShouldCountJSONVotesOfAnyShape(t *testing.T) {
	tasks, err := file.Decode("tasks.json", []byte(`[
		{"id": "1", "teams": ["Alpha", "Beta"], "votes": ["v1", "v2"]},
		{"id": "2", "teams": ["Alpha"], "votes": [7, {"createdAt": "2024-05-01"}, {"voterId": 42}]}
	]`))
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, 2, tasks[0].VoteCount())
	require.Equal(t, 3, tasks[1].VoteCount())
	require.Equal(t, "v1", tasks[0].Votes[0].Value)
}

func TestDecodeShouldCountYAMLVotesOfAnyShape(t *testing.T) {
	tasks, err := file.Decode("tasks.yaml", []byte(`
- id: "1"
  teams: [Alpha, Beta]
  votes: [v1, v2]
- id: "2"
  teams: [Alpha]
  votes:
    - 7
    - createdAt: 2024-05-01
    - voterId: 42
`))
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, 2, tasks[0].VoteCount())
	require.Equal(t, 3, tasks[1].VoteCount())
}

func TestTasksShouldReturnErrNotFoundForMissingFile(t *testing.T) {
	_, err := file.New(filepath.Join(t.TempDir(), "missing.json")).Tasks(context.Background())
	require.Equal(t, teambubbles.ErrNotFound, errors.Cause(err))
}

func TestTasksShouldReturnErrInvalidTaskForMalformedFile(t *testing.T) {
	path := writeFile(t, "tasks.json", `{"id": "not an array"}`)

	_, err := file.New(path).Tasks(context.Background())
	require.Equal(t, teambubbles.ErrInvalidTask, errors.Cause(err))
}

func TestTasksShouldReturnEmptySliceForEmptyArray(t *testing.T) {
	path := writeFile(t, "tasks.json", `[]`)

	tasks, err := file.New(path).Tasks(context.Background())
	require.NoError(t, err)
	require.NotNil(t, tasks)
	require.Empty(t, tasks)
}

func TestTasksShouldHonorCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := file.New("irrelevant.json").Tasks(ctx)
	require.Equal(t, context.Canceled, err)
}

func TestTasksShouldRereadFile(t *testing.T) {
	path := writeFile(t, "tasks.json", `[]`)
	source := file.New(path)

	tasks, err := source.Tasks(context.Background())
	require.NoError(t, err)
	require.Empty(t, tasks)

	require.NoError(t, os.WriteFile(path, []byte(`[{"id": "1", "teams": ["A"], "votes": []}]`), 0644))

	tasks, err = source.Tasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}
