package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCreateAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    createAdminArgs
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-username", "root", "-email", "root@example.com", "-env", "prod.env"},
			want: createAdminArgs{username: "root", email: "root@example.com", envPath: "prod.env"},
		},
		{
			name: "default env file",
			args: []string{"-username", "root", "-email", "root@example.com"},
			want: createAdminArgs{username: "root", email: "root@example.com", envPath: ".env"},
		},
		{
			name:    "missing email",
			args:    []string{"-username", "root"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-username", "root", "-email", "root@example.com", "-role", "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseCreateAdmin(tt.args)
			if tt.wantErr {
				require.ErrorIs(t, err, errUsage)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), []string{"drop-admin"}, os.Stdin, &bytes.Buffer{})
	require.ErrorIs(t, err, errUsage)
}

func TestPromptPassword_Piped(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	t.Cleanup(func() { r.Close() })

	_, err = w.WriteString("s3cret-pass\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	got, err := promptPassword(r, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "s3cret-pass", got)
}
