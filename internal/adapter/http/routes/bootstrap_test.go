package routes

import (
	"context"
	"errors"
	"testing"

	"printshop_ops/internal/domain/entities"
	"printshop_ops/internal/infrastructure/config"
	"printshop_ops/internal/infrastructure/seed"
	mock_interfaces "printshop_ops/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestLoadDataset(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock_interfaces.NewMockISeedSource(ctrl)
		source.EXPECT().Load(gomock.Any()).Return(entities.Dataset{Quotes: []entities.Quote{{ID: "quote-001"}}}, nil)

		ds, err := loadDataset(context.Background(), source, zap.NewNop())
		require.NoError(t, err)
		assert.Len(t, ds.Quotes, 1)
	})

	t.Run("failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := mock_interfaces.NewMockISeedSource(ctrl)
		boom := errors.New("table missing")
		source.EXPECT().Load(gomock.Any()).Return(entities.Dataset{}, boom)

		_, err := loadDataset(context.Background(), source, zap.NewNop())
		if !errors.Is(err, boom) {
			t.Fatalf("expected wrapped seed error, got %v", err)
		}
	})
}

func TestSeedSource_DefaultsToDemo(t *testing.T) {
	cfg := &config.Config{}
	cfg.Seed.Source = config.SeedSourceDemo

	source, err := seedSource(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	_, ok := source.(*seed.DemoSeed)
	assert.True(t, ok, "expected demo seed, got %T", source)
}
