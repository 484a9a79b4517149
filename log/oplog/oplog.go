// Package oplog adapts a *logging.Logger (github.com/op/go-logging) to
// twire.Logger. go-logging has no structured-fields API, so fields are
// flattened into the message.
package oplog

import (
	"fmt"
	"sort"
	"strings"

	logging "github.com/op/go-logging"

	"github.com/twire/twire"
)

type Logger struct{ L *logging.Logger }

func (o Logger) Debug(msg string, f twire.Fields) { o.L.Debug(format(msg, f)) }
func (o Logger) Warn(msg string, f twire.Fields)  { o.L.Warning(format(msg, f)) }

func format(msg string, f twire.Fields) string {
	if len(f) == 0 {
		return msg
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, f[k]))
	}
	return msg + " " + strings.Join(parts, " ")
}

var _ twire.Logger = Logger{}
