package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	SetupTestLogger()
	logrus.SetOutput(buf)
	t.Cleanup(func() {
		SetEnvironment("")
	})
	return buf
}

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_IncludesCorrelationAndUser(t *testing.T) {
	buf := captureOutput(t)
	SetEnvironment("production")

	ctx, id := WithCorrelationID(context.Background())
	ctx = WithUserID(ctx, "u-1")

	ForContext(ctx).Info("mensagem")

	assert.Contains(t, buf.String(), id)
	assert.Contains(t, buf.String(), "user_id=u-1")
}

func TestWithFields_FiltersInDevelopment(t *testing.T) {
	buf := captureOutput(t)
	SetEnvironment("development")

	L.WithFields(Fields{"campaign_id": "c1", "user_agent": "curl"}).Info("filtrado")

	assert.Contains(t, buf.String(), "campaign_id=c1")
	assert.NotContains(t, buf.String(), "user_agent")
}
