package upstream_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/okian/lineup/internal/adapters/upstream"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient_GetJSON(t *testing.T) {
	Convey("Given an upstream server", t, func() {
		ctx := context.Background()
		var calls atomic.Int32
		var gotKey, gotAccept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			gotKey = r.Header.Get("x-api-key")
			gotAccept = r.Header.Get("Accept")
			switch r.URL.Path {
			case "/ok":
				_, _ = w.Write([]byte(`{"week": 7}`))
			case "/bad-json":
				_, _ = w.Write([]byte(`{"week":`))
			default:
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("boom"))
			}
		}))
		defer srv.Close()

		c := upstream.New("test", upstream.WithRateLimit(1000, 10), upstream.WithBreaker(0.5, time.Minute))

		Convey("When the response is valid", func() {
			var out struct {
				Week int `json:"week"`
			}
			header := http.Header{}
			header.Set("x-api-key", "secret")
			err := c.GetJSON(ctx, srv.URL+"/ok", header, &out)

			Convey("Then it is decoded and headers are sent", func() {
				So(err, ShouldBeNil)
				So(out.Week, ShouldEqual, 7)
				So(gotKey, ShouldEqual, "secret")
				So(gotAccept, ShouldEqual, "application/json")
			})
		})

		Convey("When the body is not JSON", func() {
			var out map[string]any
			err := c.GetJSON(ctx, srv.URL+"/bad-json", nil, &out)

			Convey("Then a decode error is returned", func() {
				So(errors.Is(err, upstream.ErrDecode), ShouldBeTrue)
			})
		})

		Convey("When the server keeps failing", func() {
			var errs []error
			for i := 0; i < 5; i++ {
				_, err := c.Get(ctx, srv.URL+"/fail", nil)
				errs = append(errs, err)
			}

			Convey("Then status errors trip the breaker and later calls fail fast", func() {
				So(errors.Is(errs[0], upstream.ErrUnexpectedStatus), ShouldBeTrue)
				So(errs[0].Error(), ShouldContainSubstring, "500")
				So(errors.Is(errs[4], upstream.ErrCircuitOpen), ShouldBeTrue)
				So(calls.Load(), ShouldEqual, 3)
			})
		})

		Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := c.Get(cctx, srv.URL+"/ok", nil)

			Convey("Then the call fails without reaching the server", func() {
				So(err, ShouldNotBeNil)
				So(calls.Load(), ShouldEqual, 0)
			})
		})
	})
}
