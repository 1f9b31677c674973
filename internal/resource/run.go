package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/log"

	"github.com/friendsofgo/errors"
)

// Query runs a document outside the CRUD set and decodes its root field into T.
func Query[T any](ctx context.Context, l log.Logger, client graphql.Client, doc Document, vars map[string]any) graphql.Result[T] {
	req := graphql.NewRequest(doc.Operation, doc.Query).Vars(vars)

	var data map[string]json.RawMessage
	if err := client.Run(ctx, req, &data); err != nil {
		return graphql.Failure[T](err)
	}

	var v T
	raw, ok := data[doc.Field]
	if !ok || string(raw) == "null" {
		return graphql.Failure[T](errors.Wrap(ErrMissingData, doc.Operation))
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		l.Errorf(ctx, "internal.resource.Query.Unmarshal: %v", err)
		return graphql.Failure[T](errors.Wrap(err, doc.Operation))
	}

	return graphql.Success(v)
}

func extraKey(extra map[string]any) string {
	if len(extra) == 0 {
		return ""
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "&%s=%v", k, extra[k])
	}
	return sb.String()
}
