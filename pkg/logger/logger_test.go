package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeCollection struct {
	mu   sync.Mutex
	docs []LogDocument
}

func (f *fakeCollection) InsertMany(_ context.Context, docs []interface{}, _ ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range docs {
		f.docs = append(f.docs, d.(LogDocument))
	}
	return &mongo.InsertManyResult{}, nil
}

func TestSetupProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Setup("production", &buf)
	l.Debug("hidden")
	l.Info("shown", "order_id", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"order_id":7`)
}

func TestWithCtxFallsBackToBase(t *testing.T) {
	var buf bytes.Buffer
	Setup("local", &buf)

	WithCtx(context.Background()).Info("plain")

	tagged := L().With("request_id", "abc")
	WithCtx(InjectLogger(context.Background(), tagged)).Info("tagged")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "request_id")
	assert.Contains(t, lines[1], "request_id=abc")
}

func TestMultiHandlerFansOutToMongoSink(t *testing.T) {
	col := &fakeCollection{}
	sink := newMongoHandler(col, slog.LevelInfo)

	var buf bytes.Buffer
	l := Setup("local", &buf, sink)
	l.With("request_id", "r-1").Info("stored", "customer_id", 3)
	l.Debug("below sink level")
	sink.Close()
	sink.Close()

	assert.Contains(t, buf.String(), "stored")
	assert.Contains(t, buf.String(), "below sink level")

	col.mu.Lock()
	defer col.mu.Unlock()
	require.Len(t, col.docs, 1)
	assert.Equal(t, "stored", col.docs[0].Msg)
	assert.Equal(t, "r-1", col.docs[0].RequestID)
	assert.EqualValues(t, 3, col.docs[0].Attrs["customer_id"])
	assert.WithinDuration(t, time.Now(), col.docs[0].Time, time.Minute)
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, LevelFor(204))
	assert.Equal(t, slog.LevelWarn, LevelFor(404))
	assert.Equal(t, slog.LevelError, LevelFor(500))
}
