package service

import (
	"context"
	"testing"
	"time"

	"github.com/Ishowar84/urban-plate-backend/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	nopLogger
	entries []map[string]interface{}
}

func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {
	l.entries = append(l.entries, details)
}

func TestEventAuditHandleLogsEvent(t *testing.T) {
	log := &recordingLogger{}
	s := &eventAuditService{logger: log}

	event := events.BaseEvent{
		Type:       events.TypeOrderStatusChanged,
		Data:       map[string]interface{}{"order_id": "abc", "status": "cooking"},
		OccurredAt: time.Now(),
	}
	require.NoError(t, s.handle(context.Background(), event))

	require.Len(t, log.entries, 1)
	assert.Equal(t, events.TypeOrderStatusChanged, log.entries[0]["event_type"])
}
