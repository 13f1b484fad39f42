package app_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/nikolayk812/cartstate-demo/internal/app"
	"github.com/nikolayk812/cartstate-demo/internal/config"
	"github.com/nikolayk812/cartstate-demo/internal/logger"
	"github.com/nikolayk812/cartstate-demo/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() config.Config {
	return config.Config{
		Addr:            "127.0.0.1:0",
		LogLevel:        "debug",
		Currency:        currency.USD,
		CatalogJSON:     `[{"name":"Fern","cost":"$7.25"}]`,
		ShutdownTimeout: time.Second,
	}
}

func TestServe(t *testing.T) {
	server, err := app.NewServer(testConfig(), logger.Wrap(zaptest.NewLogger(t)))
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, ln)
	}()

	client := &http.Client{
		Transport: &http.Transport{DisableKeepAlives: true},
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	base := fmt.Sprintf("http://%s", ln.Addr())

	resp, err := client.PostForm(base+"/cart/items", url.Values{"name": {"Fern"}})
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp, err = client.Get(base + "/api/cart")
	require.NoError(t, err)

	var m view.Model
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m))
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, "7.25", m.Total)
	assert.Equal(t, 1, m.TotalItems)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNewServerInvalidCatalog(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogJSON = `[{"name":""}]`

	_, err := app.NewServer(cfg, logger.Wrap(zaptest.NewLogger(t)))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "cfg.Catalog: "))
}

func TestRunInvalidAddr(t *testing.T) {
	cfg := testConfig()
	cfg.Addr = "not-an-address"

	server, err := app.NewServer(cfg, logger.Wrap(zaptest.NewLogger(t)))
	require.NoError(t, err)

	err = server.Run(t.Context())
	assert.ErrorContains(t, err, "net.Listen")
}
