package ids

import (
	"strings"

	"github.com/rs/xid"
)

func NewId(prefix string) string {
	guid := xid.New()
	if !strings.HasSuffix(prefix, "_") {
		prefix += "_"
	}
	return prefix + guid.String()
}
