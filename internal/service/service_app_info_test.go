package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-gated-site/internal/config"
	"github.com/MKhiriev/go-gated-site/internal/logger"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		wantVersion string
		wantErr     error
	}{
		{name: "semver", version: "1.0.0", wantVersion: "1.0.0"},
		{name: "build placeholder", version: "N/A", wantVersion: "N/A"},
		{name: "surrounding spaces trimmed", version: "  2.5.1 ", wantVersion: "2.5.1"},
		{name: "empty", version: "", wantErr: ErrVersionIsNotSpecified},
		{name: "blank", version: "   ", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				assert.Nil(t, svc)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestAppInfoService_VersionIsStable(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// a cancelled request still renders its footer
	for range 3 {
		assert.Equal(t, "3.0.0", svc.GetAppVersion(ctx))
	}
}
