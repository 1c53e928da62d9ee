package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-nft-issuer/internal/adapter"
	"github.com/feral-file/ff-nft-issuer/internal/domain"
	"github.com/feral-file/ff-nft-issuer/internal/logger"
	"github.com/feral-file/ff-nft-issuer/internal/mocks"
	"github.com/feral-file/ff-nft-issuer/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testPublisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
}

func setupTestPublisher(t *testing.T) *testPublisherMocks {
	ctrl := gomock.NewController(t)
	return &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}
}

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:             "nats://localhost:4222",
		StreamName:      "NFT_EVENTS",
		SubjectPrefix:   "nft.events",
		MaxReconnects:   3,
		ReconnectWait:   time.Second,
		ConnectionName:  "test",
		DuplicateWindow: 2 * time.Minute,
	}
}

func TestNewPublisher_ConnectError(t *testing.T) {
	mocks := setupTestPublisher(t)
	defer mocks.ctrl.Finish()

	mocks.natsJS.EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(nil, nil, errors.New("no servers available"))

	_, err := jetstream.NewPublisher(context.Background(), testConfig(), mocks.natsJS, adapter.NewJSON())
	assert.ErrorContains(t, err, "no servers available")
}

func TestNewPublisher_CreatesStream(t *testing.T) {
	mocks := setupTestPublisher(t)
	defer mocks.ctrl.Finish()

	ctx := context.Background()
	cfg := testConfig()
	cfg.CreateStream = true

	mocks.natsJS.EXPECT().Connect(cfg.URL, gomock.Any()).Return(mocks.conn, mocks.js, nil)
	mocks.js.EXPECT().
		CreateOrUpdateStream(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, streamCfg natsjs.StreamConfig) error {
			assert.Equal(t, "NFT_EVENTS", streamCfg.Name)
			assert.Equal(t, []string{"nft.events.>"}, streamCfg.Subjects)
			assert.Equal(t, natsjs.FileStorage, streamCfg.Storage)
			assert.Equal(t, 2*time.Minute, streamCfg.Duplicates)
			return nil
		})

	pub, err := jetstream.NewPublisher(ctx, cfg, mocks.natsJS, adapter.NewJSON())
	require.NoError(t, err)
	require.NotNil(t, pub)
}

func TestNewPublisher_StreamErrorClosesConnection(t *testing.T) {
	mocks := setupTestPublisher(t)
	defer mocks.ctrl.Finish()

	ctx := context.Background()
	cfg := testConfig()
	cfg.CreateStream = true

	mocks.natsJS.EXPECT().Connect(cfg.URL, gomock.Any()).Return(mocks.conn, mocks.js, nil)
	mocks.js.EXPECT().CreateOrUpdateStream(ctx, gomock.Any()).Return(errors.New("insufficient resources"))
	mocks.conn.EXPECT().Close()

	_, err := jetstream.NewPublisher(ctx, cfg, mocks.natsJS, adapter.NewJSON())
	assert.ErrorContains(t, err, "insufficient resources")
}

func TestPublishEvent(t *testing.T) {
	mocks := setupTestPublisher(t)
	defer mocks.ctrl.Finish()

	ctx := context.Background()
	tokenID := uint64(42)
	event := &domain.Event{
		ID:       "01JB0000000000000000000000",
		Sequence: 7,
		Type:     domain.EventTypeApproval,
		TokenID:  &tokenID,
		From:     "0x00000000000000000000000000000000000000A1",
		To:       "0x00000000000000000000000000000000000000B2",
	}

	mocks.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mocks.conn, mocks.js, nil)
	mocks.js.EXPECT().
		Publish(ctx, "nft.events.approval", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, opts ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var decoded domain.Event
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, event.ID, decoded.ID)
			assert.Equal(t, uint64(7), decoded.Sequence)
			assert.Len(t, opts, 1)
			return &natsjs.PubAck{Stream: "NFT_EVENTS", Sequence: 1}, nil
		})

	pub, err := jetstream.NewPublisher(ctx, testConfig(), mocks.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	require.NoError(t, pub.PublishEvent(ctx, event))
}

func TestPublishEvent_DuplicateIsNotAnError(t *testing.T) {
	mocks := setupTestPublisher(t)
	defer mocks.ctrl.Finish()

	ctx := context.Background()
	mocks.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mocks.conn, mocks.js, nil)
	mocks.js.EXPECT().
		Publish(ctx, "nft.events.transfer", gomock.Any(), gomock.Any()).
		Return(&natsjs.PubAck{Stream: "NFT_EVENTS", Sequence: 1, Duplicate: true}, nil)

	pub, err := jetstream.NewPublisher(ctx, testConfig(), mocks.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	err = pub.PublishEvent(ctx, &domain.Event{ID: "01JB", Type: domain.EventTypeTransfer})
	assert.NoError(t, err)
}

func TestPublishEvent_PublishError(t *testing.T) {
	mocks := setupTestPublisher(t)
	defer mocks.ctrl.Finish()

	ctx := context.Background()
	mocks.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mocks.conn, mocks.js, nil)
	mocks.js.EXPECT().
		Publish(ctx, "nft.events.approval_for_all", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout"))

	pub, err := jetstream.NewPublisher(ctx, testConfig(), mocks.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	err = pub.PublishEvent(ctx, &domain.Event{ID: "01JB", Type: domain.EventTypeApprovalForAll})
	assert.ErrorContains(t, err, "timeout")
}

func TestClose(t *testing.T) {
	t.Run("drains", func(t *testing.T) {
		mocks := setupTestPublisher(t)
		defer mocks.ctrl.Finish()

		mocks.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mocks.conn, mocks.js, nil)
		mocks.conn.EXPECT().Drain().Return(nil)

		pub, err := jetstream.NewPublisher(context.Background(), testConfig(), mocks.natsJS, adapter.NewJSON())
		require.NoError(t, err)
		pub.Close()
	})

	t.Run("falls back to close", func(t *testing.T) {
		mocks := setupTestPublisher(t)
		defer mocks.ctrl.Finish()

		mocks.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mocks.conn, mocks.js, nil)
		mocks.conn.EXPECT().Drain().Return(errors.New("connection closed"))
		mocks.conn.EXPECT().Close()

		pub, err := jetstream.NewPublisher(context.Background(), testConfig(), mocks.natsJS, adapter.NewJSON())
		require.NoError(t, err)
		pub.Close()
	})
}
