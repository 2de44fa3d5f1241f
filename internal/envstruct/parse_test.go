package envstruct_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/unbroken/internal/envstruct"
)

type testConfig struct {
	Addr         string `env:"TEST_ADDR" envDefault:"localhost:8080"`
	DatabaseURL  string `env:"TEST_DATABASE_URL"`
	HistoryLimit int    `env:"TEST_HISTORY_LIMIT" envDefault:"10"`
	untagged     string //nolint:unused // verifies untagged fields are skipped.
}

func lookupFromMap(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}

func TestPopulate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    testConfig
		wantErr error
	}{
		{
			name: "all variables set",
			env: map[string]string{
				"TEST_ADDR":          "localhost:0",
				"TEST_DATABASE_URL":  ":memory:",
				"TEST_HISTORY_LIMIT": "30",
			},
			want: testConfig{
				Addr:         "localhost:0",
				DatabaseURL:  ":memory:",
				HistoryLimit: 30,
			},
		},
		{
			name: "defaults applied",
			env: map[string]string{
				"TEST_DATABASE_URL": "./unbroken.sqlite3",
			},
			want: testConfig{
				Addr:         "localhost:8080",
				DatabaseURL:  "./unbroken.sqlite3",
				HistoryLimit: 10,
			},
		},
		{
			name:    "missing variable without default",
			env:     map[string]string{},
			wantErr: envstruct.ErrEnvNotSet,
		},
		{
			name: "invalid integer",
			env: map[string]string{
				"TEST_DATABASE_URL":  ":memory:",
				"TEST_HISTORY_LIMIT": "ten",
			},
			wantErr: envstruct.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg testConfig
			err := envstruct.Populate(&cfg, lookupFromMap(tt.env))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Populate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Populate() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, cfg, cmp.AllowUnexported(testConfig{})); diff != "" {
				t.Errorf("Populate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPopulateRejectsNonStruct(t *testing.T) {
	var s string
	if err := envstruct.Populate(&s, lookupFromMap(nil)); !errors.Is(err, envstruct.ErrInvalidValue) {
		t.Errorf("Populate() error = %v, want %v", err, envstruct.ErrInvalidValue)
	}
	if err := envstruct.Populate(testConfig{}, lookupFromMap(nil)); !errors.Is(err, envstruct.ErrInvalidValue) {
		t.Errorf("Populate() error = %v, want %v", err, envstruct.ErrInvalidValue)
	}
}
