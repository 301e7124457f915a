package mq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fileshare-api/config"
)

func TestPublisherWorker_ShutdownLeavesInputUsable(t *testing.T) {
	r := New(config.MQ{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.PublisherWorker(ctx)
		close(done)
	}()

	cancel()
	<-done

	// handlers racing the shutdown still send on the input channel
	require.NotPanics(t, func() {
		r.GetInputChan() <- Event{Action: ActionFileUploaded}
	})
}
