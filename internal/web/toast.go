package web

import (
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const triggerHeader = "HX-Trigger"

type toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// toasts collects dashboard notifications for one response and hands them
// to the page as an HTMX "toast" event.
type toasts struct {
	items []toast
}

func (t *toasts) Success(msg string) {
	t.items = append(t.items, toast{Level: "success", Message: msg})
}

func (t *toasts) Failure(msg string) {
	t.items = append(t.items, toast{Level: "error", Message: msg})
}

// flush must run before the body is written.
func (t *toasts) flush(c *gin.Context) {
	if len(t.items) == 0 {
		return
	}
	payload, err := json.Marshal(map[string][]toast{"toast": t.items})
	if err != nil {
		log.Error().Err(err).Msg("encoding toast trigger")
		return
	}
	c.Header(triggerHeader, string(payload))
}
