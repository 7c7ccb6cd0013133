package mq

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/tmash55/Linkty/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducer_NilReceiverIsNoop(t *testing.T) {
	var p *Producer

	// The handler treats a disabled pipeline as a successful send
	err := p.SendClick(context.Background(), &ClickMessage{ShortCode: "ABCD"})
	assert.NoError(t, err)

	assert.NoError(t, p.Close())
}

func TestClickMessage_Codec(t *testing.T) {
	country := "US"
	msg := &ClickMessage{
		ShortCode: "ABCD",
		Event: model.ClickEvent{
			LinkID:     42,
			ClickType:  model.ClickQRScan,
			DeviceType: model.DeviceSmartphone,
			VisitorID:  "v-1",
			Country:    &country,
			IsQRScan:   true,
		},
		NewVisitor: true,
	}

	bytes, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded ClickMessage
	require.NoError(t, json.Unmarshal(bytes, &decoded))

	assert.Equal(t, "ABCD", decoded.ShortCode)
	assert.True(t, decoded.NewVisitor)
	assert.Equal(t, int64(42), decoded.Event.LinkID)
	assert.Equal(t, model.ClickQRScan, decoded.Event.ClickType)
	assert.True(t, decoded.Event.IsQRScan)
	require.NotNil(t, decoded.Event.Country)
	assert.Equal(t, "US", *decoded.Event.Country)
}
