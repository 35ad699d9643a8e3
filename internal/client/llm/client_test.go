package llm

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"arcade_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

// serve поднимает fasthttp сервер в памяти и возвращает клиент, который ходит в него
func serve(t *testing.T, handler fasthttp.RequestHandler) *Client {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	go func() { _ = fasthttp.Serve(ln, handler) }()
	t.Cleanup(func() { _ = ln.Close() })

	return &Client{
		http: &fasthttp.Client{
			Dial: func(string) (net.Conn, error) { return ln.Dial() },
		},
		endpoint: "http://llm.local/v1/chat/completions",
		apiKey:   "secret",
		model:    "tiny",
		timeout:  time.Second,
	}
}

func TestCompleteSendsPromptAndReadsFirstChoice(t *testing.T) {
	var got completionRequest
	var auth string
	c := serve(t, func(ctx *fasthttp.RequestCtx) {
		auth = string(ctx.Request.Header.Peek("Authorization"))
		_ = json.Unmarshal(ctx.PostBody(), &got)
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"choices":[{"message":{"role":"assistant","content":"  hello  "}}]}`)
	})

	text, err := c.Complete(context.Background(), "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "tiny", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "say hello", got.Messages[0].Content)
}

func TestCompleteNonOKIsRemoteUnavailable(t *testing.T) {
	c := serve(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusTooManyRequests)
	})

	_, err := c.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, model.ErrRemoteUnavailable)
}

func TestCompleteGarbageIsMalformed(t *testing.T) {
	c := serve(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString("<html>gateway</html>")
	})

	_, err := c.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, model.ErrMalformedPayload)

	empty := serve(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`{"choices":[]}`)
	})
	_, err = empty.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, model.ErrMalformedPayload)
}

func TestDeadlineRespectsContext(t *testing.T) {
	c := &Client{timeout: time.Minute}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.LessOrEqual(t, c.deadline(ctx), time.Second)
	assert.Equal(t, time.Minute, c.deadline(context.Background()))
}
