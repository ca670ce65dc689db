package bootstrap_test

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/bootstrap"
	"github.com/jhoicas/Warrick-api/pkg/config"
	"github.com/jhoicas/Warrick-api/pkg/logger"
)

func TestOpenStore_MemoriaSiembraAdmin(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cret")
	v.Set("ADMIN_USERNAME", "owner")
	v.Set("ADMIN_PASSWORD", "pw")
	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	ctx := context.Background()
	store, closeFn, err := bootstrap.OpenStore(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer closeFn()

	svc := bootstrap.NewServices(store, cfg, logger.Nop())
	out, err := svc.Auth.Login(ctx, dto.LoginRequest{Identifier: "owner", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Admin", out.User.Role)
}
