package configuration_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-config-resolver/configuration"
	"github.com/MKhiriev/go-config-resolver/internal/mock"
	"github.com/MKhiriev/go-config-resolver/models"
)

func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestResolve_UsesInjectedModuleLoader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := writeConfigDir(t, map[string]string{
		"db.hcl":  "ignored by the mock",
		"db.json": `{"db":{"port":5432}}`,
	})
	module := filepath.Join(dir, "db.hcl")

	loader := mock.NewMockModuleLoader(ctrl)
	gomock.InOrder(
		loader.EXPECT().Invalidate(module),
		loader.EXPECT().Evaluate(module).Return(models.Tree{
			"db": models.Tree{"host": "localhost", "port": int64(1)},
		}, nil),
	)

	c := configuration.New(
		configuration.WithRootDir(dir),
		configuration.WithDefaultDirs(),
		configuration.WithCustomDirs(dir),
		configuration.WithArgs([]string{}),
		configuration.WithEnvironment("test"),
		configuration.WithModuleLoader(loader),
	)
	require.NoError(t, c.Resolve(context.Background()))

	assert.Equal(t, "localhost", c.Get("db.host"))
	assert.Equal(t, int64(5432), c.Get("db.port"))
}

func TestResolve_ModuleEvaluationErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := writeConfigDir(t, map[string]string{"app.hcl": ""})
	cause := errors.New("division by zero")

	loader := mock.NewMockModuleLoader(ctrl)
	loader.EXPECT().Invalidate(gomock.Any())
	loader.EXPECT().Evaluate(gomock.Any()).Return(nil, cause)

	c := configuration.New(
		configuration.WithRootDir(dir),
		configuration.WithDefaultDirs(),
		configuration.WithCustomDirs(dir),
		configuration.WithArgs([]string{}),
		configuration.WithEnvironment("test"),
		configuration.WithModuleLoader(loader),
	)
	err := c.Resolve(context.Background())

	var evalErr *models.ModuleEvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, filepath.Join(dir, "app.hcl"), evalErr.File)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, c.Get("app"))
}
