package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/backsync/internal/adapters/config"
	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/backsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func TestLoader_LoadFile_Success(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	content := `
src_dir: ` + src + `
dst_bucket_name: photos
app_key_id: key-id
app_key: secret
global_ignores:
  - ".*/node_modules"
size_limits:
  '.*\.iso$': ">100"
ignore_engine: git
transfer:
  threads: 4
  extra_args: ["--quiet"]
`
	path := createFile(t, t.TempDir(), "config.yaml", content)

	cfg, err := newLoader(t).LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, src, cfg.SrcDir)
	assert.Equal(t, "photos", cfg.DstBucketName)
	assert.Equal(t, "key-id", cfg.AppKeyID)
	assert.Equal(t, "secret", cfg.AppKey)
	assert.Equal(t, []string{".*/node_modules"}, cfg.GlobalIgnores)
	assert.Equal(t, map[string]string{`.*\.iso$`: ">100"}, cfg.SizeLimits)
	assert.Equal(t, domain.IgnoreEngineGit, cfg.IgnoreEngine)
	assert.Equal(t, domain.DefaultIgnoreFile, cfg.IgnoreFile)
	assert.Equal(t, domain.DefaultStateFile, cfg.StateFile)
	assert.Equal(t, domain.TransferConfig{
		Command:          domain.DefaultTransferCommand,
		Threads:          4,
		CompareThreshold: domain.DefaultCompareThreshold,
		ExtraArgs:        []string{"--quiet"},
	}, cfg.Transfer)
}

func TestLoader_LoadFile_RelativeSourceIsMadeAbsolute(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := createFile(t, dir, "config.yaml", `
src_dir: .
dst_bucket_name: b
app_key_id: i
app_key: k
`)

	cfg, err := newLoader(t).LoadFile(path)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.SrcDir))
	assert.Equal(t, domain.IgnoreEnginePattern, cfg.IgnoreEngine)
}

func TestLoader_LoadFile_Errors(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	notDir := createFile(t, t.TempDir(), "file.txt", "x")

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing bucket",
			content: "src_dir: " + src + "\napp_key_id: i\napp_key: k\n",
			wantErr: domain.ErrMissingConfigKey.Error(),
		},
		{
			name:    "empty key counts as missing",
			content: "src_dir: " + src + "\ndst_bucket_name: b\napp_key_id: i\napp_key: ''\n",
			wantErr: domain.ErrMissingConfigKey.Error(),
		},
		{
			name:    "source does not exist",
			content: "src_dir: " + filepath.Join(src, "nope") + "\ndst_bucket_name: b\napp_key_id: i\napp_key: k\n",
			wantErr: domain.ErrSourceNotFound.Error(),
		},
		{
			name:    "source is a file",
			content: "src_dir: " + notDir + "\ndst_bucket_name: b\napp_key_id: i\napp_key: k\n",
			wantErr: domain.ErrSourceNotDirectory.Error(),
		},
		{
			name:    "invalid global regex",
			content: "src_dir: " + src + "\ndst_bucket_name: b\napp_key_id: i\napp_key: k\nglobal_ignores: ['(']\n",
			wantErr: domain.ErrInvalidPattern.Error(),
		},
		{
			name:    "invalid size regex",
			content: "src_dir: " + src + "\ndst_bucket_name: b\napp_key_id: i\napp_key: k\nsize_limits: {'[': '>1'}\n",
			wantErr: domain.ErrInvalidPattern.Error(),
		},
		{
			name:    "unknown engine",
			content: "src_dir: " + src + "\ndst_bucket_name: b\napp_key_id: i\napp_key: k\nignore_engine: hg\n",
			wantErr: domain.ErrUnknownIgnoreEngine.Error(),
		},
		{
			name:    "malformed yaml",
			content: "src_dir: [unclosed\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := createFile(t, t.TempDir(), "config.yaml", tt.content)

			_, err := newLoader(t).LoadFile(path)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := newLoader(t).LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	require.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestLoader_LoadFile_WarnsOnNegativeThreads(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().
		Warn("value must be positive, using default", "key", "transfer.threads", "value", -2, "default", domain.DefaultTransferThreads).
		Times(1)

	path := createFile(t, t.TempDir(), "config.yaml", `
src_dir: `+t.TempDir()+`
dst_bucket_name: b
app_key_id: i
app_key: k
transfer:
  threads: -2
`)

	cfg, err := config.NewLoader(mockLogger).LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTransferThreads, cfg.Transfer.Threads)
}
