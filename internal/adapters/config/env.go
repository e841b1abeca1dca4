package config

import (
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every configuration environment variable,
// e.g. BACKSYNC_SRC_DIR or BACKSYNC_TRANSFER_THREADS.
const EnvPrefix = "BACKSYNC"

// LoadEnv reads the configuration from BACKSYNC_* environment variables.
//
// BACKSYNC_GLOBAL_IGNORES is a whitespace separated list, or a YAML/JSON list
// when it starts with "[". BACKSYNC_SIZE_LIMITS is a YAML/JSON mapping.
func (l *Loader) LoadEnv() (*domain.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	globals, err := parseList(v.GetString("global_ignores"))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "key", "global_ignores")
	}

	var sizeLimits map[string]string
	if raw := v.GetString("size_limits"); strings.TrimSpace(raw) != "" {
		if err := yaml.Unmarshal([]byte(raw), &sizeLimits); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "key", "size_limits")
		}
	}

	extraArgs, err := parseList(v.GetString("transfer.extra_args"))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "key", "transfer.extra_args")
	}

	return l.build(&Backfile{
		SrcDir:        v.GetString("src_dir"),
		DstBucketName: v.GetString("dst_bucket_name"),
		AppKeyID:      v.GetString("app_key_id"),
		AppKey:        v.GetString("app_key"),
		GlobalIgnores: globals,
		SizeLimits:    sizeLimits,
		IgnoreFile:    v.GetString("ignore_file"),
		IgnoreEngine:  v.GetString("ignore_engine"),
		StateFile:     v.GetString("state_file"),
		Transfer: TransferDTO{
			Command:          v.GetString("transfer.command"),
			Threads:          v.GetInt("transfer.threads"),
			CompareThreshold: v.GetInt("transfer.compare_threshold"),
			ExtraArgs:        extraArgs,
		},
	})
}

func parseList(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if !strings.HasPrefix(raw, "[") {
		return strings.Fields(raw), nil
	}
	var list []string
	if err := yaml.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return list, nil
}
