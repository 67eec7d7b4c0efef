package cli

import (
	"testing"

	"github.com/Marat1506/hadj-admin/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestTwinModules(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.InMemory = true

	require.NoError(t, fx.ValidateApp(twinModules(cfg)...))
}
