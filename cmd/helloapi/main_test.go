package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/aescanero/helloapi/internal/config"
	"github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func testConfig(port int) *config.Config {
	return &config.Config{
		Host:           "127.0.0.1",
		Port:           port,
		LogLevel:       "info",
		MetricsEnabled: true,
		Timeouts: config.TimeoutConfig{
			ReadHeader: time.Second,
			Read:       time.Second,
			Write:      time.Second,
			Idle:       time.Second,
			Shutdown:   5 * time.Second,
		},
	}
}

// freePort asks the kernel for an unused port and releases it.
func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func getWithRetry(url string, deadline time.Time) (*http.Response, error) {
	for {
		resp, err := http.Get(url)
		if err == nil || time.Now().After(deadline) {
			return resp, err
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestRun(t *testing.T) {
	convey.Convey("Given the HTTP port is already bound", t, func() {
		busy, err := net.Listen("tcp", "127.0.0.1:0")
		convey.So(err, convey.ShouldBeNil)
		defer busy.Close()

		cfg := testConfig(busy.Addr().(*net.TCPAddr).Port)

		convey.Convey("When the service runs", func() {
			errCh := make(chan error, 1)
			go func() { errCh <- run(context.Background(), cfg, zap.NewNop()) }()

			convey.Convey("Then it stops with a bind error", func() {
				select {
				case err := <-errCh:
					convey.So(err, convey.ShouldNotBeNil)
					convey.So(err.Error(), convey.ShouldContainSubstring, "failed to bind")
				case <-time.After(5 * time.Second):
					t.Fatal("run did not return after bind failure")
				}
			})
		})
	})

	convey.Convey("Given the gRPC port is already bound", t, func() {
		busy, err := net.Listen("tcp", "127.0.0.1:0")
		convey.So(err, convey.ShouldBeNil)
		defer busy.Close()

		cfg := testConfig(freePort(t))
		cfg.GRPCPort = busy.Addr().(*net.TCPAddr).Port

		convey.Convey("Then run fails before serving", func() {
			err := run(context.Background(), cfg, zap.NewNop())
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "failed to create gRPC server")
		})
	})

	convey.Convey("Given a free port", t, func() {
		cfg := testConfig(freePort(t))
		cfg.GRPCPort = freePort(t)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errCh := make(chan error, 1)
		go func() { errCh <- run(ctx, cfg, zap.NewNop()) }()

		convey.Convey("When the service is called and then signalled", func() {
			base := "http://" + cfg.GetHTTPAddr()
			resp, err := getWithRetry(base+"/", time.Now().Add(5*time.Second))
			convey.So(err, convey.ShouldBeNil)
			body, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()

			metricsResp, err := http.Get(base + "/metrics")
			convey.So(err, convey.ShouldBeNil)
			scrape, _ := io.ReadAll(metricsResp.Body)
			_ = metricsResp.Body.Close()

			cancel()

			convey.Convey("Then it served requests and shut down cleanly", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(string(body), convey.ShouldEqual, `{"message":"Hello World"}`)
				convey.So(string(scrape), convey.ShouldContainSubstring, `helloapi_build_info{version="dev"} 1`)
				convey.So(string(scrape), convey.ShouldContainSubstring, "go_goroutines")

				select {
				case err := <-errCh:
					convey.So(err, convey.ShouldBeNil)
				case <-time.After(10 * time.Second):
					t.Fatal("run did not return after cancellation")
				}
			})
		})
	})
}

func TestInitLogger(t *testing.T) {
	convey.Convey("Given log level names", t, func() {
		cases := map[string]zapcore.Level{
			"debug":   zapcore.DebugLevel,
			"info":    zapcore.InfoLevel,
			"warn":    zapcore.WarnLevel,
			"error":   zapcore.ErrorLevel,
			"unknown": zapcore.InfoLevel,
		}

		for name, want := range cases {
			logger := initLogger(name)

			convey.So(logger.Core().Enabled(want), convey.ShouldBeTrue)
			if want > zapcore.DebugLevel {
				convey.So(logger.Core().Enabled(want-1), convey.ShouldBeFalse)
			}
		}
	})
}
