package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	"isp-dashboard/pkg/scope"

	"github.com/gin-gonic/gin"
)

// redactedHeaders never leave the process in a bug report.
var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}

func captureStackTrace() []string {
	var pcs [stackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var trace []string
	for {
		f, more := frames.Next()
		trace = append(trace, fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function))
		if !more {
			break
		}
	}
	return trace
}

// newBugReport describes the failed request: who made it, in which
// organization, and what it carried.
func newBugReport(c *gin.Context, errString string, backtrace []string) string {
	sc := scope.GetScopeFromContext(c.Request.Context())

	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	var sb strings.Builder
	sb.WriteString("================ ISP DASHBOARD ERROR ================\n")
	fmt.Fprintf(&sb, "Route   : %s %s\n", c.Request.Method, c.Request.URL.Path)
	if org := c.Param("organizationId"); org != "" {
		fmt.Fprintf(&sb, "Org     : %s\n", org)
	}
	if !sc.IsAnonymous() {
		fmt.Fprintf(&sb, "User    : %s (%s)\n", sc.UserID, sc.Username)
	}
	if id := c.Writer.Header().Get(requestIDHeader); id != "" {
		fmt.Fprintf(&sb, "Request : %s\n", id)
	}
	if q := c.Request.URL.RawQuery; q != "" {
		fmt.Fprintf(&sb, "Query   : %s\n", q)
	}
	sb.WriteString("----------------------------------------------------\n")

	keys := make([]string, 0, len(c.Request.Header))
	for k := range c.Request.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := strings.Join(c.Request.Header[k], ", ")
		if redactedHeaders[k] {
			v = "[redacted]"
		}
		fmt.Fprintf(&sb, "    %s: %s\n", k, v)
	}

	if len(body) > 0 {
		sb.WriteString("Body    :\n")
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, body, "    ", "  "); err == nil {
			sb.WriteString("    " + pretty.String() + "\n")
		} else {
			sb.WriteString("    " + string(body) + "\n")
		}
	}
	sb.WriteString("----------------------------------------------------\n")
	fmt.Fprintf(&sb, "Error   : %s\n", errString)
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			fmt.Fprintf(&sb, "[%d]: %s\n", i, line)
		}
	}
	sb.WriteString("====================================================\n")
	return sb.String()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(message, "\n") {
		if current.Len()+len(line) > discordMaxMessageLen && current.Len() > 0 {
			chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
			current.Reset()
		}
		for len(line) > discordMaxMessageLen {
			chunks = append(chunks, line[:discordMaxMessageLen])
			line = line[discordMaxMessageLen:]
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
	}
	return chunks
}
