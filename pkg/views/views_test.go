package views_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superapp/pkg/logger"
	"superapp/pkg/navigation"
	"superapp/pkg/views"
)

func TestNavigationTable(t *testing.T) {
	table, err := views.NewTable("/", logger.NewNop())
	require.NoError(t, err)

	want := []navigation.Entry{
		{Path: "/", Name: "home", LoadStrategy: navigation.LoadEager, Target: views.Home},
		{Path: "/dishcovery", Name: "dishcovery", LoadStrategy: navigation.LoadLazy, Target: views.DishCovery},
		{Path: "/skyflow", Name: "skyflow", LoadStrategy: navigation.LoadLazy, Target: views.SkyFlow},
		{Path: "/profile", Name: "profile", LoadStrategy: navigation.LoadLazy, Target: views.Profile},
		{Path: "/qr-scanner", Name: "qr-scanner", LoadStrategy: navigation.LoadLazy, Target: views.QRScanner},
	}
	assert.Equal(t, want, table.Entries())
}

func TestResolveEveryRoute(t *testing.T) {
	table, err := views.NewTable("/", logger.NewNop())
	require.NoError(t, err)

	for _, e := range table.Entries() {
		v, err := table.Resolve(context.Background(), e.Path)
		require.NoError(t, err, e.Path)
		assert.Equal(t, e.Target, v.ID)
		assert.NotEmpty(t, v.Title)
		assert.True(t, table.Loaded(e.Target))
	}
}

func TestDeferredLoadHonoursCancelledContext(t *testing.T) {
	for _, r := range views.Routes() {
		if r.Strategy != navigation.LoadLazy {
			continue
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.Load(ctx)
		assert.ErrorIs(t, err, context.Canceled, r.Path)
	}
}

func TestTablesDoNotShareViews(t *testing.T) {
	a, err := views.NewTable("/", logger.NewNop())
	require.NoError(t, err)

	for _, p := range []string{"/", "/dishcovery"} {
		v, err := a.Resolve(context.Background(), p)
		require.NoError(t, err)
		v.Sections[0] = "changed"
	}

	b, err := views.NewTable("/", logger.NewNop())
	require.NoError(t, err)

	home, err := b.Resolve(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, []string{"assistant", "shortcuts"}, home.Sections)

	home, err = a.Resolve(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, []string{"assistant", "shortcuts"}, home.Sections)

	dish, err := a.Resolve(context.Background(), "/dishcovery")
	require.NoError(t, err)
	assert.Equal(t, "restaurants", dish.Sections[0])
}
