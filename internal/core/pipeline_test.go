package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPipeline(t *testing.T) {
	p := DefaultPipeline()

	want := []Stage{
		{Name: "Checkout", Description: "Clone source code from repository"},
		{Name: "Install Dependencies", Description: "Install Node.js dependencies"},
		{Name: "Lint", Description: "Run code quality checks"},
		{Name: "Test", Description: "Execute unit tests with coverage"},
		{Name: "Build", Description: "Create production build"},
		{Name: "Docker Build", Description: "Build and tag container image"},
		{Name: "Deploy to Minikube", Description: "Update Kubernetes deployment"},
		{Name: "Health Check", Description: "Verify deployment success"},
	}

	require.Len(t, p.Stages, 8)
	assert.Equal(t, "Checkout", p.Stages[0].Name)
	assert.Equal(t, want, p.Stages)
	for _, s := range p.Stages {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Description)
	}
}

func TestDefaultPipelineIsACopy(t *testing.T) {
	p := DefaultPipeline()
	p.Stages[0].Name = "changed"
	p.Stages = p.Stages[:1]

	again := DefaultPipeline()
	assert.Len(t, again.Stages, 8)
	assert.Equal(t, "Checkout", again.Stages[0].Name)
}

func TestNumbered(t *testing.T) {
	stages := DefaultPipeline().Numbered()

	require.Len(t, stages, 8)
	for i, s := range stages {
		assert.Equal(t, i+1, s.Position)
	}
	assert.Equal(t, "Health Check", stages[7].Name)
}

func TestParsePipelineRejectsEmptyFields(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{
			name: "no stages",
			yaml: "name: empty\n",
			err:  ErrNoStages,
		},
		{
			name: "missing description",
			yaml: "stages:\n  - name: Build\n",
			err:  ErrEmptyStageField,
		},
		{
			name: "missing name",
			yaml: "stages:\n  - description: Create production build\n",
			err:  ErrEmptyStageField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePipeline([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParsePipelineInvalidYAML(t *testing.T) {
	_, err := ParsePipeline([]byte("stages: [\n"))
	assert.Error(t, err)
}

func TestLoadPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	doc := "name: short\nstages:\n  - name: Build\n    description: go build ./...\n  - name: Test\n    description: go test ./...\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("failed to write pipeline: %v", err)
	}

	p, err := LoadPipeline(path)
	require.NoError(t, err)
	assert.Equal(t, "short", p.Name)
	assert.Len(t, p.Stages, 2)

	_, err = LoadPipeline(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
