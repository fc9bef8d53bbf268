package logging

import (
	"bytes"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter(t *testing.T) {
	log := logging.MustGetLogger(Module)

	t.Run("filters below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, SetupWriter(&buf, "WARNING"))

		log.Info("quiet")
		log.Warning("loud")

		assert.NotContains(t, buf.String(), "quiet")
		assert.Contains(t, buf.String(), "WARNI")
		assert.Contains(t, buf.String(), "loud")
	})

	t.Run("debug lets everything through", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, SetupWriter(&buf, "debug"))

		log.Debugf("loaded %d customers", 3)
		assert.Contains(t, buf.String(), "loaded 3 customers")
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, SetupWriter(&buf, "chatty"))
	})
}
