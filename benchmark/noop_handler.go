package benchmark

import (
	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(messages []any, ctx core.Context) {
	_ = len(messages)
	_ = ctx.Level.Value
}
